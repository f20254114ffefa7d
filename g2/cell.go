// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package g2

// Cell is a single G2 map square: up to five optional layers in fixed
// priority order (panel highest, terrain lowest). A cell decoded from a
// well-formed stream always has Terrain set.
type Cell struct {
	Panel      *Element
	Mob        *Element
	NotAllowed *Element
	Pickup     *Element
	Terrain    *Element
}

// DecodeCells reads a flat element stream into width*height cells. Per
// cell, layers arrive in increasing priority (terrain, pickup,
// not-allowed, mob, panel); a cell is complete once a layer it already
// holds would be overwritten, or once a new terrain tile starts the next
// cell. The caller is expected to have already decoded the element
// stream itself (see DecodeElements).
func DecodeCells(elems []Element, width, height int) ([]Cell, error) {
	want := width * height
	cells := make([]Cell, 0, want)
	var cur Cell
	haveTerrain := false

	flush := func() {
		cells = append(cells, cur)
		cur = Cell{}
		haveTerrain = false
	}

	for i := range elems {
		e := elems[i]
		layer, ok := e.Opcode.Layer()
		if !ok {
			return nil, newError(UnknownOpcode, "opcode %d has no layer", e.Opcode)
		}
		full := cellHasLayer(&cur, layer)
		if layer == LayerTerrain && haveTerrain {
			flush()
			full = false
		}
		if full {
			flush()
		}
		setCellLayer(&cur, layer, &elems[i])
		if layer == LayerTerrain {
			haveTerrain = true
		}
		if len(cells) == want {
			return cells, nil
		}
	}
	if haveTerrain {
		flush()
	}
	if len(cells) != want {
		return nil, newError(BadFieldLength, "decoded %d cells, want %d", len(cells), want)
	}
	return cells, nil
}

func cellHasLayer(c *Cell, l Layer) bool {
	switch l {
	case LayerTerrain:
		return c.Terrain != nil
	case LayerPickup:
		return c.Pickup != nil
	case LayerNotAllowed:
		return c.NotAllowed != nil
	case LayerMob:
		return c.Mob != nil
	case LayerPanel:
		return c.Panel != nil
	}
	return false
}

func setCellLayer(c *Cell, l Layer, e *Element) {
	switch l {
	case LayerTerrain:
		c.Terrain = e
	case LayerPickup:
		c.Pickup = e
	case LayerNotAllowed:
		c.NotAllowed = e
	case LayerMob:
		c.Mob = e
	case LayerPanel:
		c.Panel = e
	}
}

// EncodeCells flattens cells back into element order (terrain, pickup,
// not-allowed, mob, panel), skipping layers that are nil. A cell with a
// nil Terrain is an error: every cell must begin with a terrain tile.
func EncodeCells(cells []Cell) ([]Element, error) {
	var out []Element
	for i, c := range cells {
		if c.Terrain == nil {
			return nil, newError(BadFieldLength, "cell %d has no terrain layer", i)
		}
		out = append(out, *c.Terrain)
		if c.Pickup != nil {
			out = append(out, *c.Pickup)
		}
		if c.NotAllowed != nil {
			out = append(out, *c.NotAllowed)
		}
		if c.Mob != nil {
			out = append(out, *c.Mob)
		}
		if c.Panel != nil {
			out = append(out, *c.Panel)
		}
	}
	return out, nil
}
