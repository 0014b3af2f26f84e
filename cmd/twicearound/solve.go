// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/twicearound/core"
	"github.com/katalvlaran/twicearound/internal/ctxlog"
	"github.com/katalvlaran/twicearound/loader"
	"github.com/katalvlaran/twicearound/metrics"
	"github.com/katalvlaran/twicearound/report"
	"github.com/katalvlaran/twicearound/tsp"
)

type solveCmd struct {
	File string `arg:"" optional:"" default:"-" help:"Graph file, or - for stdin"`

	Format         string `default:"auto" enum:"auto,adjacency,hcl,yaml" env:"TWICEAROUND_FORMAT" help:"Input format (${enum}); auto picks by extension"`
	Root           int    `default:"0" env:"TWICEAROUND_ROOT" help:"Start and end vertex of the circuit"`
	Walk           string `default:"sweep" enum:"sweep,preorder" env:"TWICEAROUND_WALK" help:"Tree walk (${enum})"`
	MST            string `name:"mst" default:"prim" enum:"prim,prim-heap,kruskal" env:"TWICEAROUND_MST" help:"Spanning tree algorithm (${enum})"`
	TwoOpt         bool   `name:"two-opt" env:"TWICEAROUND_TWO_OPT" help:"Polish the circuit with 2-opt"`
	TwoOptMaxMoves int    `name:"two-opt-max-moves" default:"0" help:"Cap on accepted 2-opt moves, 0 for no cap"`
	Output         string `short:"o" default:"text" enum:"text,json,yaml" env:"TWICEAROUND_OUTPUT" help:"Output format (${enum})"`
	PrintGraph     bool   `name:"print-graph" help:"Echo the parsed graph in adjacency text before the circuit"`
	MetricsFile    string `name:"metrics-file" type:"path" env:"TWICEAROUND_METRICS_FILE" help:"Write Prometheus textfile metrics to this path"`
}

func (c *solveCmd) Run(e *env) error {
	logger := ctxlog.FromContext(e.ctx)

	g, err := c.load(e.ctx, e.stdin)
	if err != nil {
		return err
	}
	logger.Info("Graph loaded", "source", c.File, "vertices", g.Order(), "edges", g.Size(),
		"weight", g.TotalWeight(), "complete", g.Complete())

	if c.PrintGraph {
		if err = loader.WriteAdjacency(e.stdout, g); err != nil {
			return fmt.Errorf("print graph: %w", err)
		}
	}

	opts := []tsp.Option{
		tsp.WithRoot(c.Root),
		tsp.WithWalk(c.Walk),
		tsp.WithMSTMethod(c.MST),
	}
	if c.TwoOpt {
		opts = append(opts, tsp.WithTwoOpt(c.TwoOptMaxMoves))
	}

	start := time.Now()
	res, err := tsp.Solve(g, opts...)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	logger.Info("Spanning tree built",
		"method", c.MST, "root", c.Root, "weight", res.MSTWeight,
		"scanned", res.MSTStats.Scanned, "pruned", res.MSTStats.Pruned)
	logger.Info("Circuit walked",
		"walk", c.Walk, "length", res.Cost, "fallbacks", res.Stats.Fallbacks,
		"detached", res.Stats.Detached, "two_opt_moves", res.Stats.TwoOptMoves, "elapsed", elapsed)
	if !res.WithinBound() {
		logger.Warn("Circuit exceeds twice the tree weight",
			"length", res.Cost, "bound", 2*res.MSTWeight, "fallbacks", res.Stats.Fallbacks)
	}

	if err = c.write(e.stdout, res); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	if c.MetricsFile != "" {
		rec := metrics.NewRecorder()
		rec.Observe(g, c.Walk, res, elapsed)
		if err = rec.WriteTextfile(c.MetricsFile); err != nil {
			return err
		}
		logger.Debug("Metrics written", "path", c.MetricsFile)
	}

	return nil
}

func (c *solveCmd) load(ctx context.Context, stdin io.Reader) (*core.Graph, error) {
	if c.File == "-" || c.File == "" {
		return loader.Load(ctx, stdin, loader.Format(c.Format))
	}

	return loader.LoadFile(ctx, c.File, loader.Format(c.Format))
}

func (c *solveCmd) write(w io.Writer, res tsp.Result) error {
	switch c.Output {
	case "json":
		return report.WriteJSON(w, res)
	case "yaml":
		return report.WriteYAML(w, res)
	default:
		return report.WriteText(w, res.Tour, res.Cost)
	}
}
