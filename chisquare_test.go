// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import "gopkg.in/check.v1"

type chisquareSuite struct{}

var _ = check.Suite(&chisquareSuite{})

func (s *chisquareSuite) TestUniform(c *check.C) {
	set := NewLevelSet()
	for i := 0; i < 4; i++ {
		l := NewLevel()
		l.Add(Coord{1, 1}, DIRT)
		set.Append(l)
	}
	corpus := NewCorpus(set)
	stat, df := corpus.ChiSquareUniformity(DIRT)
	c.Check(stat, check.Equals, 0.0)
	c.Check(df, check.Equals, 3)
	c.Check(corpus.ChiSquarePValue(DIRT), check.Equals, 1.0)
}

func (s *chisquareSuite) TestSkewed(c *check.C) {
	set := NewLevelSet()
	l0 := NewLevel()
	for x := 0; x < 10; x++ {
		l0.Add(Coord{x, 2}, DIRT)
	}
	l1 := NewLevel()
	set.Append(l0)
	set.Append(l1)
	corpus := NewCorpus(set)
	stat, df := corpus.ChiSquareUniformity(DIRT)
	c.Check(df, check.Equals, 1)
	c.Check(stat > 0, check.Equals, true)
	c.Check(corpus.ChiSquarePValue(DIRT) < 1, check.Equals, true)
}

func (s *chisquareSuite) TestSingleLevel(c *check.C) {
	set := NewLevelSet()
	set.Append(NewLevel())
	corpus := NewCorpus(set)
	stat, df := corpus.ChiSquareUniformity(DIRT)
	c.Check(stat, check.Equals, 0.0)
	c.Check(df, check.Equals, 0)
}
