// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import "github.com/james-bowman/nlp"

// PCA fits a principal-component embedding of the corpus's tile vectors
// and returns one row per level, components columns per row: component
// i of level L is how far along the i'th principal axis L's tile
// frequencies sit, the same matrix-transpose-fit-transpose-back
// convention the reference exporter uses because nlp.PCA expects
// features-as-rows, not samples-as-rows.
func (c *Corpus) PCA(components int) ([]float64, int, int, error) {
	data, rows, cols := c.TileVectors()
	mtx := array2matrix(rows, cols, data).T()

	transformer := nlp.NewPCA(components)
	transformer.Fit(mtx)
	mtx, err := transformer.Transform(mtx)
	if err != nil {
		return nil, 0, 0, err
	}
	mtx = mtx.T()

	outRows, outCols := mtx.Dims()
	out := make([]float64, outRows*outCols)
	for i := 0; i < outRows; i++ {
		for j := 0; j < outCols; j++ {
			out[i*outCols+j] = mtx.At(i, j)
		}
	}
	return out, outRows, outCols, nil
}
