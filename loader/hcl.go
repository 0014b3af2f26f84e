// SPDX-License-Identifier: MIT
package loader

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclFile is the top-level shape of an HCL graph document:
//
//	vertex "0" {
//	  adjacent = [
//	    { to = 1, weight = 1 },
//	    { to = 2, weight = 3 },
//	  ]
//	}
type hclFile struct {
	Vertices []*hclVertex `hcl:"vertex,block"`
}

type hclVertex struct {
	ID       string    `hcl:"id,label"`
	Adjacent cty.Value `hcl:"adjacent,optional"`
}

type hclArc struct {
	To     int   `cty:"to"`
	Weight int64 `cty:"weight"`
}

// hclArcList is the type every adjacent attribute is converted to.
var hclArcList = cty.List(cty.Object(map[string]cty.Type{
	"to":     cty.Number,
	"weight": cty.Number,
}))

func parseHCL(name string, src []byte) ([]vertexDecl, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, diags)
	}

	var parsed hclFile
	if diags = gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, diags)
	}

	decls := make([]vertexDecl, 0, len(parsed.Vertices))
	for _, v := range parsed.Vertices {
		pos := fmt.Sprintf("%s: vertex %q", name, v.ID)
		id, err := parseVertexID(v.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pos, err)
		}

		d := vertexDecl{id: id, pos: pos}
		if !v.Adjacent.IsNull() {
			list, err := convert.Convert(v.Adjacent, hclArcList)
			if err != nil {
				return nil, fmt.Errorf("%s: adjacent: %v: %w", pos, err, ErrSyntax)
			}
			var arcs []hclArc
			if err = gocty.FromCtyValue(list, &arcs); err != nil {
				return nil, fmt.Errorf("%s: adjacent: %v: %w", pos, err, ErrSyntax)
			}
			for _, a := range arcs {
				d.arcs = append(d.arcs, arc{to: a.To, w: a.Weight})
			}
		}
		decls = append(decls, d)
	}

	return decls, nil
}
