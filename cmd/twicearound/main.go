// SPDX-License-Identifier: MIT
//
// Command twicearound computes an approximate travelling-salesman circuit
// with the Twice-Around-the-Tree heuristic.
//
//	twicearound [solve] [FILE|-]   read a graph, print the circuit and its length
//	twicearound generate N         print a random complete graph
//
// With no arguments the graph is read from stdin in adjacency text.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/twicearound/internal/ctxlog"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type cli struct {
	LogLevel  string `name:"log-level" default:"warn" enum:"debug,info,warn,error" env:"TWICEAROUND_LOG_LEVEL" help:"Log level (${enum})"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" env:"TWICEAROUND_LOG_FORMAT" help:"Log format on stderr (${enum})"`

	Solve    solveCmd    `cmd:"" default:"withargs" help:"Compute a Hamiltonian circuit (default command)"`
	Generate generateCmd `cmd:"" help:"Print a random complete graph in adjacency text"`
}

// env carries the process streams and the request context into commands.
type env struct {
	ctx    context.Context
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// exitRequest is raised by kong's exit hook (after --help) and turned into a
// return code by run.
type exitRequest struct{ code int }

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses args, executes the selected command and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	var params cli
	parser, err := kong.New(&params,
		kong.Name("twicearound"),
		kong.Description("Approximate a travelling-salesman circuit by walking twice around a minimum spanning tree."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitRequest{code: code}) }),
	)
	if err != nil {
		fmt.Fprintln(stderr, "twicearound:", err)
		return exitError
	}

	defer func() {
		if r := recover(); r != nil {
			req, ok := r.(exitRequest)
			if !ok {
				panic(r)
			}
			code = req.code
		}
	}()

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "twicearound: error: %v\n", err)
		return exitUsage
	}

	logger := newLogger(params.LogLevel, params.LogFormat, stderr)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	if err = kctx.Run(&env{ctx: ctx, stdin: stdin, stdout: stdout, stderr: stderr}); err != nil {
		logger.Debug("Command failed", "command", kctx.Command(), "error", err)
		fmt.Fprintln(stderr, "twicearound:", err)
		return exitError
	}

	return exitOK
}

// newLogger builds the stderr logger; it is never installed as slog.Default.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
