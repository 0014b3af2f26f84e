// SPDX-License-Identifier: MIT
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parseAdjacency reads the line-oriented format:
//
//	# comment
//	0: 1 1 2 3 3 4
//	1: 0 1 2 1 3 6
//
// Each pair after the colon is "neighbour weight". A line with nothing
// after the colon declares an isolated vertex.
func parseAdjacency(r io.Reader) ([]vertexDecl, error) {
	var decls []vertexDecl
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		head, tail, ok := strings.Cut(text, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: missing ':' after vertex id: %w", line, ErrSyntax)
		}
		id, err := parseVertexID(strings.TrimSpace(head))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		fields := strings.Fields(tail)
		if len(fields)%2 != 0 {
			return nil, fmt.Errorf("line %d: odd number of tokens, want neighbour/weight pairs: %w", line, ErrSyntax)
		}
		d := vertexDecl{id: id, pos: "line " + strconv.Itoa(line), arcs: make([]arc, 0, len(fields)/2)}
		for i := 0; i < len(fields); i += 2 {
			to, err := parseVertexID(fields[i])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			w, err := strconv.ParseInt(fields[i+1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: weight %q: %w", line, fields[i+1], ErrSyntax)
			}
			d.arcs = append(d.arcs, arc{to: to, w: w})
		}
		decls = append(decls, d)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}

	return decls, nil
}

func parseVertexID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidVertex)
	}

	return id, nil
}
