// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package content

import (
	"fmt"

	"github.com/vk/contentsync/internal/checksum"
)

// SlotType classifies the slots a hull offers for mounting parts. Parts may
// be restricted to certain slot types.
type SlotType int

const (
	// SlotInvalid marks an unset or unparseable slot type.
	SlotInvalid SlotType = iota - 1
	// SlotExternal slots are exposed on the hull surface and easily damaged.
	SlotExternal
	// SlotInternal slots are protected but fewer in number.
	SlotInternal
	// SlotCore is the single central mount of a hull.
	SlotCore
)

// String returns the name used for the slot type in definition files.
func (t SlotType) String() string {
	switch t {
	case SlotExternal:
		return "external"
	case SlotInternal:
		return "internal"
	case SlotCore:
		return "core"
	default:
		return "invalid"
	}
}

// ParseSlotType maps a definition-file slot type name to its enum value.
func ParseSlotType(s string) (SlotType, error) {
	switch s {
	case "external":
		return SlotExternal, nil
	case "internal":
		return SlotInternal, nil
	case "core":
		return SlotCore, nil
	default:
		return SlotInvalid, fmt.Errorf("unknown slot type %q", s)
	}
}

// Slot is one mounting point on a hull. X and Y position the slot on the
// design screen, in [0, 1] hull-relative coordinates.
type Slot struct {
	Type SlotType
	X    float64
	Y    float64
}

// CheckSum folds the slot's type and position.
func (s Slot) CheckSum() uint32 {
	sum := checksum.Enum(0, s.Type)
	sum = checksum.Float(sum, s.X)
	return checksum.Float(sum, s.Y)
}
