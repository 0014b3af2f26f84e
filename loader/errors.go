package loader

import "errors"

// Sentinel errors for graph loading. Core validation errors
// (core.ErrNegativeWeight, core.ErrLoopNotAllowed, core.ErrAsymmetric, ...)
// pass through wrapped with the offending line or vertex.
var (
	// ErrSyntax indicates input that does not follow the format grammar.
	ErrSyntax = errors.New("loader: syntax error")

	// ErrInvalidVertex indicates a vertex id that is negative or not an integer.
	ErrInvalidVertex = errors.New("loader: invalid vertex id")

	// ErrDuplicateVertex indicates a vertex declared more than once.
	ErrDuplicateVertex = errors.New("loader: vertex declared twice")

	// ErrNoVertices indicates input without any vertex declaration.
	ErrNoVertices = errors.New("loader: no vertices")

	// ErrUnknownFormat indicates a Format outside the Format* constants.
	ErrUnknownFormat = errors.New("loader: unknown format")
)
