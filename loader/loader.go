// Package loader reads undirected weighted graphs from text and writes them back.
//
// Three formats share one model, a list of vertex declarations, each with
// its outgoing records in document order:
//
//	adjacency   0: 1 4 2 3        # vertex 0 → 1 (w=4), → 2 (w=3)
//	hcl         vertex "0" { adjacent = [{ to = 1, weight = 4 }] }
//	yaml/json   vertices: [{id: 0, adjacent: [{to: 1, weight: 4}]}]
//
// The vertex count is 1 + the largest id seen. Records are inserted with
// core.Graph.AddArc exactly as written, then core.Graph.Validate checks that
// every record has its mirror, so an undirected edge must be listed under
// both of its endpoints.
package loader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/twicearound/core"
	"github.com/katalvlaran/twicearound/internal/ctxlog"
)

// Format names an input syntax.
type Format string

const (
	// FormatAuto picks the format from the file extension (see DetectFormat).
	FormatAuto Format = "auto"
	// FormatAdjacency is the line-oriented "v: u w u w" syntax.
	FormatAdjacency Format = "adjacency"
	// FormatHCL is HashiCorp configuration language with vertex blocks.
	FormatHCL Format = "hcl"
	// FormatYAML is YAML; JSON documents are accepted as well.
	FormatYAML Format = "yaml"
)

// DetectFormat maps a path's extension to a Format:
// .hcl → hcl, .yaml/.yml/.json → yaml, anything else → adjacency.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL
	case ".yaml", ".yml", ".json":
		return FormatYAML
	default:
		return FormatAdjacency
	}
}

// MaxVertices bounds the vertex count, so a single large id cannot make
// core.NewGraph allocate gigabytes before the input is rejected.
const MaxVertices = 1 << 20

// arc is one record of a vertex declaration.
type arc struct {
	to int
	w  int64
}

// vertexDecl is a vertex with its records, plus a position for messages.
type vertexDecl struct {
	id   int
	arcs []arc
	pos  string
}

// Load reads a graph in the given format from r. FormatAuto reads adjacency text.
func Load(ctx context.Context, r io.Reader, format Format) (*core.Graph, error) {
	return load(ctx, r, "<input>", format)
}

// LoadFile reads a graph from path. FormatAuto detects the format from the extension.
func LoadFile(ctx context.Context, path string, format Format) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph file %s: %w", path, err)
	}
	defer f.Close()

	if format == FormatAuto || format == "" {
		format = DetectFormat(path)
	}

	return load(ctx, f, path, format)
}

func load(ctx context.Context, r io.Reader, name string, format Format) (*core.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading graph", "source", name, "format", string(format))

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var decls []vertexDecl
	switch format {
	case FormatAuto, FormatAdjacency, "":
		decls, err = parseAdjacency(bytes.NewReader(src))
	case FormatHCL:
		decls, err = parseHCL(name, src)
	case FormatYAML:
		decls, err = parseYAML(bytes.NewReader(src))
	default:
		return nil, fmt.Errorf("format %q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	g, err := assemble(decls)
	if err != nil {
		return nil, fmt.Errorf("invalid graph in %s: %w", name, err)
	}
	logger.Debug("Graph loaded", "source", name, "vertices", g.Order(), "edges", g.Size())

	return g, nil
}

// assemble turns declarations into a validated graph.
//
// Steps:
//  1. Reject duplicate declarations and ids ≥ MaxVertices.
//  2. n = 1 + max id over declarations and record targets.
//  3. AddArc every record in document order.
//  4. Validate symmetry.
func assemble(decls []vertexDecl) (*core.Graph, error) {
	if len(decls) == 0 {
		return nil, ErrNoVertices
	}

	maxID := -1
	seen := make(map[int]string, len(decls))
	for _, d := range decls {
		if prev, dup := seen[d.id]; dup {
			return nil, fmt.Errorf("%s: vertex %d (first at %s): %w", d.pos, d.id, prev, ErrDuplicateVertex)
		}
		seen[d.id] = d.pos
		if d.id >= MaxVertices {
			return nil, fmt.Errorf("%s: vertex %d, limit %d: %w", d.pos, d.id, MaxVertices, ErrInvalidVertex)
		}
		maxID = max(maxID, d.id)
		for _, a := range d.arcs {
			if a.to < 0 || a.to >= MaxVertices {
				return nil, fmt.Errorf("%s: neighbour %d, limit %d: %w", d.pos, a.to, MaxVertices, ErrInvalidVertex)
			}
			maxID = max(maxID, a.to)
		}
	}

	g, err := core.NewGraph(maxID + 1)
	if err != nil {
		return nil, err
	}
	for _, d := range decls {
		for _, a := range d.arcs {
			if err = g.AddArc(d.id, a.to, a.w); err != nil {
				return nil, fmt.Errorf("%s: %w", d.pos, err)
			}
		}
	}
	if err = g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}
