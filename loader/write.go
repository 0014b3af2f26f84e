// SPDX-License-Identifier: MIT
package loader

import (
	"bufio"
	"errors"
	"io"
	"strconv"

	"github.com/katalvlaran/twicearound/core"
)

// WriteAdjacency renders g in the adjacency text format, one line per vertex
// with records in adjacency order. Load(…, FormatAdjacency) of the output
// rebuilds an identical graph.
func WriteAdjacency(w io.Writer, g *core.Graph) error {
	if g == nil {
		return errors.New("loader: WriteAdjacency: nil graph")
	}

	bw := bufio.NewWriter(w)
	var buf []byte
	for v := 0; v < g.Order(); v++ {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, ':')
		nbs, _ := g.Neighbors(v)
		for _, e := range nbs {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(e.To), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, e.Weight, 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}
