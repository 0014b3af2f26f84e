// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/katalvlaran/twicearound/builder"
	"github.com/katalvlaran/twicearound/internal/ctxlog"
	"github.com/katalvlaran/twicearound/loader"
)

type generateCmd struct {
	N int `arg:"" help:"Number of vertices"`

	Seed      int64   `default:"1" env:"TWICEAROUND_SEED" help:"Random seed"`
	MinWeight int64   `name:"min-weight" default:"1" help:"Smallest edge weight"`
	MaxWeight int64   `name:"max-weight" default:"100" help:"Largest edge weight"`
	Metric    bool    `help:"Use rounded-up Euclidean distances between random points (ignores the weight range)"`
	PlaneSize float64 `name:"plane-size" default:"100" help:"Side of the square points are drawn from with --metric"`
}

func (c *generateCmd) Run(e *env) error {
	if c.N < 1 {
		return fmt.Errorf("generate: N must be at least 1, got %d", c.N)
	}

	opts := []builder.BuilderOption{builder.WithSeed(c.Seed)}
	cons := builder.Complete()
	if c.Metric {
		if c.PlaneSize <= 0 {
			return fmt.Errorf("generate: --plane-size must be positive, got %g", c.PlaneSize)
		}
		opts = append(opts, builder.WithPlaneSize(c.PlaneSize))
		cons = builder.Euclidean()
	} else {
		if c.MinWeight < 0 || c.MaxWeight < c.MinWeight {
			return fmt.Errorf("generate: need 0 <= --min-weight <= --max-weight, got %d..%d", c.MinWeight, c.MaxWeight)
		}
		opts = append(opts, builder.WithUniformWeight(c.MinWeight, c.MaxWeight))
	}

	g, err := builder.BuildGraph(c.N, opts, cons)
	if err != nil {
		return err
	}
	ctxlog.FromContext(e.ctx).Info("Graph generated",
		"vertices", g.Order(), "edges", g.Size(), "seed", c.Seed, "metric", c.Metric)

	return loader.WriteAdjacency(e.stdout, g)
}
