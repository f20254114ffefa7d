// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import (
	"bufio"
	"io"

	"github.com/kshedden/gonpy"
	"gonum.org/v1/gonum/mat"
)

// Corpus is a set of levels analyzed as a single sample for statistical
// and machine-learning purposes: tile frequency tables, PCA embeddings,
// goodness-of-fit tests, and numpy export all operate on a Corpus rather
// than a single Level.
type Corpus struct {
	Set *LevelSet
}

// NewCorpus wraps set for analysis. set is not copied; callers must not
// mutate it while a Corpus built from it is in use.
func NewCorpus(set *LevelSet) *Corpus {
	return &Corpus{Set: set}
}

// TileFrequencies returns, for each possible tile code, the total number
// of occurrences of that code across every level's map (both layers), in
// code order.
func (c *Corpus) TileFrequencies() [int(MaxTileCode) + 1]int {
	var freq [int(MaxTileCode) + 1]int
	for _, l := range c.Set.Levels {
		for y := range l.Map {
			for x := range l.Map[y] {
				freq[l.Map[y][x].Top]++
				freq[l.Map[y][x].Bottom]++
			}
		}
	}
	return freq
}

// TileVectors returns one row per level, one column per tile code: row i,
// column t is the number of occurrences of tile code t in level i. This
// is the feature matrix consumed by PCA and FitTickRegression.
func (c *Corpus) TileVectors() (data []float64, rows, cols int) {
	rows = len(c.Set.Levels)
	cols = int(MaxTileCode) + 1
	data = make([]float64, rows*cols)
	for i, l := range c.Set.Levels {
		for y := range l.Map {
			for x := range l.Map[y] {
				cell := l.Map[y][x]
				data[i*cols+int(cell.Top)]++
				data[i*cols+int(cell.Bottom)]++
			}
		}
	}
	return data, rows, cols
}

// ExportNumpy writes the TileVectors matrix to w in numpy .npy format, the
// same row-major float64 layout the reference exporter produces, so the
// corpus can be loaded directly with numpy.load on the far end.
func (c *Corpus) ExportNumpy(w io.Writer) error {
	data, rows, cols := c.TileVectors()
	bufw := bufio.NewWriter(w)
	// gonpy closes the writer it's given and ignores the error, so wrap
	// w in a nopCloser and flush/check separately.
	npw, err := gonpy.NewWriter(nopCloser{bufw})
	if err != nil {
		return err
	}
	npw.Shape = []int{rows, cols}
	if err := npw.WriteFloat64(data); err != nil {
		return err
	}
	return bufw.Flush()
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func array2matrix(rows, cols int, data []float64) mat.Matrix {
	return mat.NewDense(rows, cols, data)
}
