// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package content

import (
	"github.com/vk/contentsync/internal/checksum"
)

// Hull is the base frame a ship design is built on. It fixes the design's
// core stats and, through its slots, how many parts can be added and where.
//
// A Hull is immutable once parsed. Exclusions are kept sorted so that the
// checksum folds them in a canonical order regardless of how the definition
// file listed them.
type Hull struct {
	Name        string
	Description string
	Speed       float64
	Fuel        float64
	Stealth     float64
	Structure   float64
	Producible  bool
	Slots       []Slot
	Tags        []string
	Exclusions  []string
	Icon        string
	Graphic     string
}

// NumSlots returns how many slots of the given type the hull offers.
func (h *Hull) NumSlots(t SlotType) int {
	n := 0
	for _, s := range h.Slots {
		if s.Type == t {
			n++
		}
	}
	return n
}

// HasTag reports whether the hull carries the given content tag.
func (h *Hull) HasTag(tag string) bool {
	for _, t := range h.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CheckSum folds every field of the hull, nested slots included. The result
// is the same on every platform and every run for identical content, which
// is what lets a server and its clients compare hull definitions without
// exchanging them.
func (h *Hull) CheckSum() uint32 {
	sum := checksum.String(0, h.Name)
	sum = checksum.String(sum, h.Description)
	sum = checksum.Float(sum, h.Speed)
	sum = checksum.Float(sum, h.Fuel)
	sum = checksum.Float(sum, h.Stealth)
	sum = checksum.Float(sum, h.Structure)
	sum = checksum.Bool(sum, h.Producible)
	sum = checksum.Objects(sum, h.Slots)
	sum = checksum.Strings(sum, h.Tags)
	sum = checksum.Strings(sum, h.Exclusions)
	sum = checksum.String(sum, h.Icon)
	return checksum.String(sum, h.Graphic)
}
