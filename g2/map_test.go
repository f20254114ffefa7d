// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package g2

import "gopkg.in/check.v1"

type mapSuite struct{}

var _ = check.Suite(&mapSuite{})

func (s *mapSuite) TestPackMapRoundTrip(c *check.C) {
	floor := Element{Opcode: FLOOR}
	wall := Element{Opcode: WALL}
	chip := Element{Opcode: CHIP}
	player := Element{Opcode: PLAYER, Direction: South}

	cells := []Cell{
		{Terrain: &floor},
		{Terrain: &floor, Pickup: &chip},
		{Terrain: &floor, Mob: &player},
		{Terrain: &wall},
	}

	data, err := PackMap(2, 2, cells)
	c.Assert(err, check.IsNil)

	width, height, got, err := UnpackMap(data)
	c.Assert(err, check.IsNil)
	c.Check(width, check.Equals, 2)
	c.Check(height, check.Equals, 2)
	c.Assert(got, check.HasLen, 4)
	c.Check(*got[0].Terrain, check.Equals, floor)
	c.Check(*got[1].Pickup, check.Equals, chip)
	c.Check(*got[2].Mob, check.Equals, player)
	c.Check(*got[3].Terrain, check.Equals, wall)
}
