// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package g2

import "gopkg.in/check.v1"

type modifierSuite struct{}

var _ = check.Suite(&modifierSuite{})

func (s *modifierSuite) TestSwitchOnWiresEncoding(c *check.C) {
	e := Element{Opcode: SWITCH_ON, Wires: ParseWires("NS"), WireTunnels: ParseWires("E")}
	b, err := BuildModifier(e)
	c.Assert(err, check.IsNil)
	c.Check(b, check.DeepEquals, []byte{0x25})
}

func (s *modifierSuite) TestLetterTileEncoding(c *check.C) {
	e := Element{Opcode: LETTER_TILE_SPACE, Char: 'A'}
	b, err := BuildModifier(e)
	c.Assert(err, check.IsNil)
	c.Check(b, check.DeepEquals, []byte{0x41})
}

func (s *modifierSuite) TestModifierRoundTrip(c *check.C) {
	elems := []Element{
		{Opcode: SWITCH_ON, Wires: ParseWires("NS"), WireTunnels: ParseWires("E")},
		{Opcode: LETTER_TILE_SPACE, Char: 'Q'},
		{Opcode: CLONE_MACHINE, Directions: ParseWires("NE")},
		{Opcode: CUSTOM_WALL, Color: Yellow},
		{Opcode: LOGIC_GATE, Gate: Gate{Kind: GateAND, Dir: East}},
		{Opcode: LOGIC_GATE, Gate: Gate{Kind: GateCounter, Digit: 7}},
		{Opcode: RAILROAD_TRACK, Tracks: TrackNE | TrackSW, ActiveTrack: TrackNE, InitialEntry: South},
		{Opcode: THIN_WALL, Wires: ParseWires("NW"), Canopy: true},
		{Opcode: PLAYER, Direction: West},
		{Opcode: FLOOR},
	}
	for _, e := range elems {
		mod, err := BuildModifier(e)
		c.Assert(err, check.IsNil)
		got, n, err := ParseModifier(e.Opcode, mod)
		c.Assert(err, check.IsNil)
		c.Check(n, check.Equals, len(mod))
		c.Check(got, check.DeepEquals, e)
	}
}
