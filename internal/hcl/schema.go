// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/contentsync/internal/content"
)

// contentFile is the top-level structure of one definition file for decoding.
type contentFile struct {
	Hulls []*hullBlock `hcl:"hull,block"`
	Parts []*partBlock `hcl:"part,block"`
}

// hullBlock mirrors a `hull "Name" { ... }` block.
type hullBlock struct {
	Name        string       `hcl:"name,label"`
	Description string       `hcl:"description,optional"`
	Speed       float64      `hcl:"speed,optional"`
	Fuel        float64      `hcl:"fuel,optional"`
	Stealth     float64      `hcl:"stealth,optional"`
	Structure   float64      `hcl:"structure,optional"`
	Producible  bool         `hcl:"producible,optional"`
	Tags        []string     `hcl:"tags,optional"`
	Exclusions  []string     `hcl:"exclusions,optional"`
	Icon        string       `hcl:"icon,optional"`
	Graphic     string       `hcl:"graphic,optional"`
	Slots       []*slotBlock `hcl:"slot,block"`
}

// slotBlock mirrors a nested `slot { ... }` block. The position stays an
// undecoded expression so it can be validated as an exact two-element tuple.
type slotBlock struct {
	Type     string         `hcl:"type"`
	Position hcl.Expression `hcl:"position,optional"`
}

// partBlock mirrors a `part "Name" { ... }` block.
type partBlock struct {
	Name        string   `hcl:"name,label"`
	Description string   `hcl:"description,optional"`
	Class       string   `hcl:"class"`
	Capacity    float64  `hcl:"capacity,optional"`
	Producible  bool     `hcl:"producible,optional"`
	Mountable   []string `hcl:"mountable,optional"`
	Exclusions  []string `hcl:"exclusions,optional"`
	Icon        string   `hcl:"icon,optional"`
}

// translateHull converts a decoded hull block into its content record.
func translateHull(b *hullBlock) (*content.Hull, error) {
	h := &content.Hull{
		Name:        b.Name,
		Description: b.Description,
		Speed:       b.Speed,
		Fuel:        b.Fuel,
		Stealth:     b.Stealth,
		Structure:   b.Structure,
		Producible:  b.Producible,
		Tags:        b.Tags,
		Exclusions:  canonicalExclusions(b.Exclusions),
		Icon:        b.Icon,
		Graphic:     b.Graphic,
	}
	for i, sb := range b.Slots {
		slot, err := translateSlot(sb)
		if err != nil {
			return nil, fmt.Errorf("hull %q slot %d: %w", b.Name, i, err)
		}
		h.Slots = append(h.Slots, slot)
	}
	return h, nil
}

// translateSlot converts a decoded slot block, evaluating the position
// expression into hull-relative coordinates.
func translateSlot(b *slotBlock) (content.Slot, error) {
	t, err := content.ParseSlotType(b.Type)
	if err != nil {
		return content.Slot{}, err
	}

	// Slots default to the hull centre when no position is given.
	slot := content.Slot{Type: t, X: 0.5, Y: 0.5}
	if b.Position == nil {
		return slot, nil
	}

	val, diags := b.Position.Value(nil)
	if diags.HasErrors() {
		return content.Slot{}, fmt.Errorf("failed to evaluate position: %w", diags)
	}
	if val.IsNull() {
		return slot, nil
	}

	coords, err := positionCoords(val)
	if err != nil {
		return content.Slot{}, err
	}
	slot.X, slot.Y = coords[0], coords[1]
	return slot, nil
}

// positionCoords validates and converts a position value into exactly two
// floats.
func positionCoords(val cty.Value) ([2]float64, error) {
	var coords [2]float64
	if !val.Type().IsTupleType() && !val.Type().IsListType() {
		return coords, fmt.Errorf("position must be a two-element list, got %s", val.Type().FriendlyName())
	}
	if val.LengthInt() != 2 {
		return coords, fmt.Errorf("position must have exactly 2 elements, got %d", val.LengthInt())
	}

	i := 0
	for it := val.ElementIterator(); it.Next(); i++ {
		_, elem := it.Element()
		num, err := convert.Convert(elem, cty.Number)
		if err != nil {
			return coords, fmt.Errorf("position element %d: %w", i, err)
		}
		if err := gocty.FromCtyValue(num, &coords[i]); err != nil {
			return coords, fmt.Errorf("position element %d: %w", i, err)
		}
	}
	return coords, nil
}

// translatePart converts a decoded part block into its content record.
func translatePart(b *partBlock) (*content.Part, error) {
	class, err := content.ParsePartClass(b.Class)
	if err != nil {
		return nil, fmt.Errorf("part %q: %w", b.Name, err)
	}

	p := &content.Part{
		Name:        b.Name,
		Description: b.Description,
		Class:       class,
		Capacity:    b.Capacity,
		Producible:  b.Producible,
		Exclusions:  canonicalExclusions(b.Exclusions),
		Icon:        b.Icon,
	}
	for _, m := range b.Mountable {
		t, err := content.ParseSlotType(m)
		if err != nil {
			return nil, fmt.Errorf("part %q: %w", b.Name, err)
		}
		p.Mountable = append(p.Mountable, t)
	}
	return p, nil
}

// canonicalExclusions sorts an exclusion list so the record folds it in a
// canonical order no matter how the definition file listed it.
func canonicalExclusions(xs []string) []string {
	if len(xs) == 0 {
		return nil
	}
	out := make([]string, len(xs))
	copy(out, xs)
	sort.Strings(out)
	return out
}
