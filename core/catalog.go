// SPDX-License-Identifier: MIT
//
// File: catalog.go
// Role: EdgeCatalog, the flat list of directed records kept alongside the
//       adjacency lists for global scanning.

package core

// EdgeCatalog is a flat sequence of directed records.
// Its order is the tie-break order for equal weights in Prim's scan.
type EdgeCatalog []Edge

// Clone returns an independent copy of the catalog.
//
// Complexity: O(len(c)).
func (c EdgeCatalog) Clone() EdgeCatalog {
	if c == nil {
		return nil
	}

	return append(EdgeCatalog(nil), c...)
}

// Prune keeps, in place and in order, the records with at least one endpoint
// outside known. It returns the shortened catalog and the number of records
// dropped. Records referencing indices outside known are kept untouched.
//
// Complexity: O(len(c)), no allocation.
func (c EdgeCatalog) Prune(known []bool) (EdgeCatalog, int) {
	kept := c[:0]
	for _, e := range c {
		if isKnown(known, e.From) && isKnown(known, e.To) {
			continue
		}
		kept = append(kept, e)
	}

	return kept, len(c) - len(kept)
}

// Weight returns the sum of record weights.
//
// Complexity: O(len(c)).
func (c EdgeCatalog) Weight() int64 {
	var sum int64
	for _, e := range c {
		sum += e.Weight
	}

	return sum
}

func isKnown(known []bool, v int) bool {
	return v >= 0 && v < len(known) && known[v]
}
