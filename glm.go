// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import (
	"fmt"
	"io"
	"log"

	"github.com/kshedden/statmodel/glm"
	"github.com/kshedden/statmodel/statmodel"
	"gonum.org/v1/gonum/stat"
)

var tickRegressionConfig = &glm.Config{
	Family:    glm.NewFamily(glm.GaussianFamily),
	FitMethod: "IRLS",
	Log:       log.New(io.Discard, "", 0),
}

func normalize(a []float64) {
	mean, std := stat.MeanStdDev(a, nil)
	if std == 0 {
		return
	}
	for i, x := range a {
		a[i] = (x - mean) / std
	}
}

// FitTickRegression regresses observed (one value per level, e.g. a
// recorded solution time in ticks) against the corpus's principal tile
// components, the same normalize-then-IRLS pattern the reference
// phenotype-vs-PCA regression uses. components is the number of leading
// PCA axes to use as predictors.
func (c *Corpus) FitTickRegression(observed []float64, components int) (*glm.GLMResults, error) {
	if len(observed) != len(c.Set.Levels) {
		return nil, &Error{Kind: InvariantViolated, Msg: fmt.Sprintf("FitTickRegression: %d observations, %d levels", len(observed), len(c.Set.Levels))}
	}
	pca, rows, cols, err := c.PCA(components)
	if err != nil {
		return nil, err
	}
	if cols > components {
		cols = components
	}

	names := make([]string, 0, cols+2)
	data := make([][]statmodel.Dtype, 0, cols+2)

	outcome := make([]statmodel.Dtype, rows)
	for i, v := range observed {
		outcome[i] = statmodel.Dtype(v)
	}
	constants := make([]statmodel.Dtype, rows)
	for i := range constants {
		constants[i] = 1
	}
	names = append(names, "outcome", "constants")
	data = append(data, outcome, constants)

	for j := 0; j < cols; j++ {
		series := make([]float64, rows)
		for i := 0; i < rows; i++ {
			series[i] = pca[i*cols+j]
		}
		normalize(series)
		dt := make([]statmodel.Dtype, rows)
		for i, v := range series {
			dt[i] = statmodel.Dtype(v)
		}
		names = append(names, fmt.Sprintf("pca%d", j))
		data = append(data, dt)
	}

	dataset := statmodel.NewDataset(data, names)
	model, err := glm.NewGLM(dataset, "outcome", names[1:], tickRegressionConfig)
	if err != nil {
		return nil, err
	}
	result := model.Fit()
	return result, nil
}
