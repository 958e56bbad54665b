// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package content

import (
	"fmt"

	"github.com/vk/contentsync/internal/checksum"
)

// PartClass groups parts by what they contribute to a design.
type PartClass int

const (
	// PartInvalid marks an unset or unparseable part class.
	PartInvalid PartClass = iota - 1
	// PartWeapon parts deal direct damage.
	PartWeapon
	// PartShield parts absorb incoming damage.
	PartShield
	// PartArmour parts add structure.
	PartArmour
	// PartDetection parts extend sensor range.
	PartDetection
	// PartStealth parts hide the ship.
	PartStealth
	// PartFuel parts extend operating range.
	PartFuel
	// PartSpeed parts raise starlane speed.
	PartSpeed
	// PartColony parts let a ship found colonies.
	PartColony
)

// String returns the name used for the part class in definition files.
func (c PartClass) String() string {
	switch c {
	case PartWeapon:
		return "weapon"
	case PartShield:
		return "shield"
	case PartArmour:
		return "armour"
	case PartDetection:
		return "detection"
	case PartStealth:
		return "stealth"
	case PartFuel:
		return "fuel"
	case PartSpeed:
		return "speed"
	case PartColony:
		return "colony"
	default:
		return "invalid"
	}
}

// ParsePartClass maps a definition-file part class name to its enum value.
func ParsePartClass(s string) (PartClass, error) {
	for c := PartWeapon; c <= PartColony; c++ {
		if c.String() == s {
			return c, nil
		}
	}
	return PartInvalid, fmt.Errorf("unknown part class %q", s)
}

// Part is a component mounted into a hull slot. Capacity carries the class
// specific magnitude: damage for weapons, shield strength for shields, and
// so on.
type Part struct {
	Name        string
	Description string
	Class       PartClass
	Capacity    float64
	Producible  bool
	// Mountable lists the slot types that accept this part, in the order the
	// definition file declares them.
	Mountable  []SlotType
	Exclusions []string
	Icon       string
}

// CanMountIn reports whether the part fits a slot of the given type.
func (p *Part) CanMountIn(t SlotType) bool {
	for _, m := range p.Mountable {
		if m == t {
			return true
		}
	}
	return false
}

// CheckSum folds every field of the part.
func (p *Part) CheckSum() uint32 {
	sum := checksum.String(0, p.Name)
	sum = checksum.String(sum, p.Description)
	sum = checksum.Enum(sum, p.Class)
	sum = checksum.Float(sum, p.Capacity)
	sum = checksum.Bool(sum, p.Producible)
	sum = checksum.Slice(sum, p.Mountable, checksum.Enum[SlotType])
	sum = checksum.Strings(sum, p.Exclusions)
	return checksum.String(sum, p.Icon)
}
