// SPDX-License-Identifier: MIT
//
// Package report renders a computed circuit for humans and machines.
//
// WriteText reproduces the classic two-line output:
//
//	Hamiltonian circuit: 0, 1, 2, 3, 0
//	circuit length: 17
//
// WriteJSON and WriteYAML emit a Summary document.
package report

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/twicearound/tsp"
)

// Summary is the machine-readable form of a tsp.Result.
type Summary struct {
	Circuit     []int `json:"circuit" yaml:"circuit,flow"`
	Length      int64 `json:"length" yaml:"length"`
	MSTWeight   int64 `json:"mst_weight" yaml:"mst_weight"`
	Fallbacks   int   `json:"fallbacks" yaml:"fallbacks"`
	WithinBound bool  `json:"within_bound" yaml:"within_bound"`
}

// NewSummary copies the reported fields out of res.
func NewSummary(res tsp.Result) Summary {
	circuit := make([]int, len(res.Tour))
	copy(circuit, res.Tour)

	return Summary{
		Circuit:     circuit,
		Length:      res.Cost,
		MSTWeight:   res.MSTWeight,
		Fallbacks:   res.Stats.Fallbacks,
		WithinBound: res.WithinBound(),
	}
}

// WriteText writes the circuit and its length. Every entry is preceded by a
// space and followed by a comma, except the last, which ends the line.
func WriteText(w io.Writer, tour []int, cost int64) error {
	bw := bufio.NewWriter(w)
	buf := []byte("Hamiltonian circuit:")
	for i, v := range tour {
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(v), 10)
		if i < len(tour)-1 {
			buf = append(buf, ',')
		}
	}
	buf = append(buf, "\ncircuit length: "...)
	buf = strconv.AppendInt(buf, cost, 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}

	return bw.Flush()
}

// WriteJSON writes res as an indented JSON Summary.
func WriteJSON(w io.Writer, res tsp.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(NewSummary(res))
}

// WriteYAML writes res as a YAML Summary.
func WriteYAML(w io.Writer, res tsp.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewSummary(res)); err != nil {
		return err
	}

	return enc.Close()
}
