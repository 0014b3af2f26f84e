// SPDX-License-Identifier: MIT
package loader

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlFile is the YAML (and JSON) document shape:
//
//	vertices:
//	  - id: 0
//	    adjacent: [{to: 1, weight: 1}, {to: 2, weight: 3}]
type yamlFile struct {
	Vertices []yamlVertex `yaml:"vertices"`
}

type yamlVertex struct {
	ID       *int      `yaml:"id"`
	Adjacent []yamlArc `yaml:"adjacent"`
}

type yamlArc struct {
	To     int   `yaml:"to"`
	Weight int64 `yaml:"weight"`
}

func parseYAML(r io.Reader) ([]vertexDecl, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	decls := make([]vertexDecl, 0, len(doc.Vertices))
	for i, v := range doc.Vertices {
		pos := fmt.Sprintf("vertices[%d]", i)
		if v.ID == nil {
			return nil, fmt.Errorf("%s: missing id: %w", pos, ErrInvalidVertex)
		}
		if *v.ID < 0 {
			return nil, fmt.Errorf("%s: id %d: %w", pos, *v.ID, ErrInvalidVertex)
		}
		d := vertexDecl{id: *v.ID, pos: pos, arcs: make([]arc, 0, len(v.Adjacent))}
		for _, a := range v.Adjacent {
			d.arcs = append(d.arcs, arc{to: a.To, w: a.Weight})
		}
		decls = append(decls, d)
	}

	return decls, nil
}
