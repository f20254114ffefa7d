// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import "gopkg.in/check.v1"

type glmSuite struct{}

var _ = check.Suite(&glmSuite{})

func (s *glmSuite) TestFitTickRegression(c *check.C) {
	set := NewLevelSet()
	observed := make([]float64, 0, 12)
	for i := 0; i < 12; i++ {
		l := NewLevel()
		for n := 0; n < i; n++ {
			l.Add(Coord{n % GridSize, (n / GridSize) + 1}, FORCE_E)
		}
		set.Append(l)
		observed = append(observed, float64(100+i*5))
	}
	corpus := NewCorpus(set)
	result, err := corpus.FitTickRegression(observed, 2)
	c.Assert(err, check.IsNil)
	c.Check(result, check.NotNil)
}

func (s *glmSuite) TestFitTickRegressionLengthMismatch(c *check.C) {
	set := NewLevelSet()
	set.Append(NewLevel())
	corpus := NewCorpus(set)
	_, err := corpus.FitTickRegression([]float64{1, 2}, 1)
	c.Check(err, check.NotNil)
}
