// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import "gopkg.in/check.v1"

type datSuite struct{}

var _ = check.Suite(&datSuite{})

func (s *datSuite) TestRoundTrip(c *check.C) {
	set := NewLevelSet()
	l := NewLevel()
	l.Title = "Test Level"
	l.Hint = "push the block"
	l.Author = "student"
	l.Time = 100
	l.Chips = 5
	l.Add(Coord{3, 3}, DIRT)
	l.Add(Coord{1, 1}, TRAP_BUTTON)
	l.Add(Coord{2, 2}, TRAP)
	c.Assert(l.Connect(Coord{1, 1}, Coord{2, 2}), check.IsNil)
	set.Append(l)

	data, err := WriteDAT(set)
	c.Assert(err, check.IsNil)

	got, err := ReadDAT(data, 0)
	c.Assert(err, check.IsNil)
	c.Assert(got.Levels, check.HasLen, 1)

	gl := got.Levels[0]
	c.Check(gl.Title, check.Equals, "Test Level")
	c.Check(gl.Hint, check.Equals, "push the block")
	c.Check(gl.Author, check.Equals, "student")
	c.Check(gl.Time, check.Equals, uint16(100))
	c.Check(gl.Chips, check.Equals, uint16(5))
	c.Check(gl.At(Coord{3, 3}).Top, check.Equals, DIRT)
	c.Check(gl.Traps[Coord{1, 1}], check.Equals, Coord{2, 2})
}

func (s *datSuite) TestWriteRejectsInvalidLevel(c *check.C) {
	set := NewLevelSet()
	l := NewLevel()
	l.Remove(Coord{0, 0}, PLAYER_S)
	set.Append(l)

	_, err := WriteDAT(set)
	c.Assert(err, check.NotNil)
	c.Check(err.(*Error).Kind, check.Equals, InvariantViolated)
}

func (s *datSuite) TestReadRejectsBadMagic(c *check.C) {
	_, err := ReadDAT([]byte{0, 0, 0, 0, 0, 0}, 0)
	c.Assert(err, check.NotNil)
	c.Check(err.(*Error).Kind, check.Equals, BadMagic)
}

func (s *datSuite) TestReadAcceptsHistoricMagic(c *check.C) {
	set := NewLevelSet()
	set.Append(NewLevel())
	data, err := WriteDAT(set)
	c.Assert(err, check.IsNil)
	data[3] = 0x01 // swap canonical magic for the historic variant
	_, err = ReadDAT(data, 0)
	c.Assert(err, check.IsNil)
}

func (s *datSuite) TestReadEnforcesMaxLevelSize(c *check.C) {
	set := NewLevelSet()
	set.Append(NewLevel())
	data, err := WriteDAT(set)
	c.Assert(err, check.IsNil)
	_, err = ReadDAT(data, 4)
	c.Assert(err, check.NotNil)
}
