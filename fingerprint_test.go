// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import "gopkg.in/check.v1"

type fingerprintSuite struct{}

var _ = check.Suite(&fingerprintSuite{})

func (s *fingerprintSuite) TestStableAcrossMetadataChange(c *check.C) {
	a := NewLevel()
	a.Add(Coord{4, 4}, DIRT)
	b := NewLevel()
	b.Add(Coord{4, 4}, DIRT)
	b.Title = "different title"
	b.Hint = "different hint"
	c.Check(a.Fingerprint(), check.Equals, b.Fingerprint())
}

func (s *fingerprintSuite) TestChangesWithMap(c *check.C) {
	a := NewLevel()
	b := NewLevel()
	b.Add(Coord{4, 4}, DIRT)
	c.Check(a.Fingerprint(), check.Not(check.Equals), b.Fingerprint())
}

func (s *fingerprintSuite) TestStableAcrossDATRoundTrip(c *check.C) {
	set := NewLevelSet()
	l := NewLevel()
	l.Add(Coord{8, 8}, WATER)
	set.Append(l)
	before := set.Fingerprint(0)

	data, err := WriteDAT(set)
	c.Assert(err, check.IsNil)
	got, err := ReadDAT(data, 0)
	c.Assert(err, check.IsNil)
	c.Check(got.Fingerprint(0), check.Equals, before)
}

func (s *fingerprintSuite) TestDiffLevelsEmptyWhenEqual(c *check.C) {
	a := NewLevel()
	b := NewLevel()
	c.Check(DiffLevels(a, b), check.Equals, "")
}

func (s *fingerprintSuite) TestDiffLevelsReportsChange(c *check.C) {
	a := NewLevel()
	b := NewLevel()
	b.Add(Coord{6, 6}, WALL)
	c.Check(DiffLevels(a, b), check.Not(check.Equals), "")
}
