// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import (
	"bytes"

	"github.com/kshedden/gonpy"
	"gopkg.in/check.v1"
)

type statsSuite struct{}

var _ = check.Suite(&statsSuite{})

func (s *statsSuite) TestTileFrequencies(c *check.C) {
	set := NewLevelSet()
	l := NewLevel()
	l.Add(Coord{2, 2}, DIRT)
	l.Add(Coord{3, 2}, DIRT)
	set.Append(l)
	corpus := NewCorpus(set)
	freq := corpus.TileFrequencies()
	c.Check(freq[DIRT], check.Equals, 2)
	c.Check(freq[PLAYER_S], check.Equals, 1)
}

func (s *statsSuite) TestTileVectorsShape(c *check.C) {
	set := NewLevelSet()
	set.Append(NewLevel())
	set.Append(NewLevel())
	corpus := NewCorpus(set)
	data, rows, cols := corpus.TileVectors()
	c.Check(rows, check.Equals, 2)
	c.Check(cols, check.Equals, int(MaxTileCode)+1)
	c.Check(len(data), check.Equals, rows*cols)
}

func (s *statsSuite) TestExportNumpy(c *check.C) {
	set := NewLevelSet()
	set.Append(NewLevel())
	set.Append(NewLevel())
	corpus := NewCorpus(set)

	var buf bytes.Buffer
	err := corpus.ExportNumpy(&buf)
	c.Assert(err, check.IsNil)

	npy, err := gonpy.NewReader(bytes.NewReader(buf.Bytes()))
	c.Assert(err, check.IsNil)
	data, err := npy.GetFloat64()
	c.Assert(err, check.IsNil)
	c.Check(data, check.HasLen, 2*(int(MaxTileCode)+1))
}

func (s *statsSuite) TestPCAShape(c *check.C) {
	set := NewLevelSet()
	for i := 0; i < 5; i++ {
		l := NewLevel()
		l.Add(Coord{i, i}, DIRT)
		set.Append(l)
	}
	corpus := NewCorpus(set)
	out, rows, cols, err := corpus.PCA(2)
	c.Assert(err, check.IsNil)
	c.Check(rows, check.Equals, 5)
	c.Check(cols, check.Equals, 2)
	c.Check(out, check.HasLen, rows*cols)
}
