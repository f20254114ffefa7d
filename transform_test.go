// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import "gopkg.in/check.v1"

type transformSuite struct{}

var _ = check.Suite(&transformSuite{})

func (s *transformSuite) TestRotate90MovesCorner(c *check.C) {
	l := NewLevel()
	l.Remove(Coord{0, 0}, PLAYER_S)
	l.Add(Coord{0, 0}, WALL)
	l.Add(Coord{gridMax, gridMax}, PLAYER_S)

	out := Rotate90(l, TransformOptions{})
	c.Check(out.At(Coord{gridMax, 0}).Top, check.Equals, WALL)
	c.Check(out.Count(Players), check.Equals, 1)
}

func (s *transformSuite) TestRotate360IsIdentity(c *check.C) {
	l := NewLevel()
	l.Add(Coord{3, 7}, DIRT)
	out := Rotate90(l, TransformOptions{})
	out = Rotate90(out, TransformOptions{})
	out = Rotate90(out, TransformOptions{})
	out = Rotate90(out, TransformOptions{})
	c.Check(out.Map, check.DeepEquals, l.Map)
}

func (s *transformSuite) TestFlipHorizontalMirrorsColumn(c *check.C) {
	l := NewLevel()
	l.Remove(Coord{0, 0}, PLAYER_S)
	l.Add(Coord{0, 5}, WALL)
	l.Add(Coord{gridMax, gridMax}, PLAYER_S)
	out := FlipHorizontal(l, TransformOptions{})
	c.Check(out.At(Coord{gridMax, 5}).Top, check.Equals, WALL)
}

func (s *transformSuite) TestPanelGuardBlocksRotateByDefault(c *check.C) {
	l := NewLevel()
	l.Add(Coord{4, 4}, PANEL_SE)
	out := Rotate90(l, TransformOptions{})
	c.Check(out.Map, check.DeepEquals, l.Map)
}

func (s *transformSuite) TestPanelGuardCanBeOverridden(c *check.C) {
	l := NewLevel()
	l.Remove(Coord{0, 0}, PLAYER_S)
	l.Add(Coord{4, 4}, PANEL_SE)
	l.Add(Coord{gridMax, gridMax}, PLAYER_S)
	out := Rotate90(l, TransformOptions{AllowLossyPanelRotate: true})
	c.Check(out.Count(PANEL_SE), check.Equals, 1)
	c.Check(out.At(Coord{4, 4}).Top, check.Not(check.Equals), PANEL_SE)
}

func (s *transformSuite) TestReplace(c *check.C) {
	l := NewLevel()
	l.Add(Coord{1, 1}, DIRT)
	out := Replace(l, DIRT, WATER)
	c.Check(out.At(Coord{1, 1}).Top, check.Equals, WATER)
	c.Check(l.At(Coord{1, 1}).Top, check.Equals, DIRT)
}

func (s *transformSuite) TestKeepDropsEverythingElse(c *check.C) {
	l := NewLevel()
	l.Add(Coord{1, 1}, DIRT)
	l.Add(Coord{2, 2}, WATER)
	var keepSet TileSet
	keepSet.add(DIRT)
	out := Keep(l, keepSet)
	c.Check(out.At(Coord{1, 1}).Top, check.Equals, DIRT)
	c.Check(out.At(Coord{2, 2}).Top, check.Equals, FLOOR)
}
