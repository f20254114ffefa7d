// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSquareUniformity tests whether tile's per-level occurrence count is
// uniform across the corpus: the null hypothesis is that every level was
// authored with the same expected count of tile. Returns the chi-square
// statistic and its degrees of freedom (one per level, minus one).
func (c *Corpus) ChiSquareUniformity(tile TileCode) (stat float64, df int) {
	counts := c.perLevelCounts(tile)
	n := len(counts)
	if n < 2 {
		return 0, 0
	}
	var total int
	for _, v := range counts {
		total += v
	}
	exp := float64(total) / float64(n)
	if exp == 0 {
		return 0, n - 1
	}
	for _, o := range counts {
		d := float64(o) - exp
		stat += d * d / exp
	}
	return stat, n - 1
}

// ChiSquarePValue is the upper-tail p-value of ChiSquareUniformity's
// statistic under a chi-square distribution with the matching degrees of
// freedom.
func (c *Corpus) ChiSquarePValue(tile TileCode) float64 {
	stat, df := c.ChiSquareUniformity(tile)
	if df <= 0 {
		return 1
	}
	dist := distuv.ChiSquared{K: float64(df), Src: rand.NewSource(rand.Uint64())}
	return 1 - dist.CDF(stat)
}

func (c *Corpus) perLevelCounts(tile TileCode) []int {
	counts := make([]int, len(c.Set.Levels))
	for i, l := range c.Set.Levels {
		counts[i] = l.Count(tile)
	}
	return counts
}
