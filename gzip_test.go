// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import "gopkg.in/check.v1"

type gzipSuite struct{}

var _ = check.Suite(&gzipSuite{})

func (s *gzipSuite) TestRoundTrip(c *check.C) {
	set := NewLevelSet()
	l := NewLevel()
	l.Add(Coord{9, 9}, DIRT)
	set.Append(l)

	data, err := WriteDATGz(set)
	c.Assert(err, check.IsNil)

	got, err := ReadDATGz(data, 0)
	c.Assert(err, check.IsNil)
	c.Assert(got.Levels, check.HasLen, 1)
	c.Check(got.Levels[0].At(Coord{9, 9}).Top, check.Equals, DIRT)
}
