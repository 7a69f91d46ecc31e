// Package decerr collects the sentinel error values returned across the
// dec module. Most call sites wrap one of these with call-site context via
// fmt.Errorf("...: %w", decerr.ErrX); a few return the bare value. Either
// way errors.Is still matches at any depth; none of them are ever
// swallowed or retried internally.
package decerr

import "errors"

var (
	// ErrInvalidTopology is returned when a mutation would violate the
	// simplicial identities, or glue_triangle is asked to reuse an edge
	// whose endpoints disagree with the requested vertex ordering.
	ErrInvalidTopology = errors.New("dec: invalid topology")

	// ErrDegenerateGeometry is returned when a simplex has a zero or
	// near-zero Cayley-Menger determinant, making the requested Hodge
	// star (and anything built from it) non-invertible.
	ErrDegenerateGeometry = errors.New("dec: degenerate geometry")

	// ErrNonOrientable is returned by the orientation pass when a
	// connected component cannot be consistently oriented.
	ErrNonOrientable = errors.New("dec: non-orientable complex")

	// ErrDimensionMismatch is returned when an operator is applied to a
	// chain or form whose length does not match the complex's simplex
	// count for that dimension.
	ErrDimensionMismatch = errors.New("dec: dimension mismatch")

	// ErrFrozen is returned by mutators called after a complex has left
	// its build phase (dual construction froze it, or Freeze was called
	// directly).
	ErrFrozen = errors.New("dec: complex is frozen")

	// ErrNotEmbedded is returned when a geometric query (subdivide_duals,
	// a Hodge star, anything metric) is requested on a complex with no
	// vertex coordinates.
	ErrNotEmbedded = errors.New("dec: complex has no embedding")

	// ErrUnknownPart is returned by relstore lookups against an
	// undeclared object table or morphism name, or an id outside the
	// table's current range.
	ErrUnknownPart = errors.New("dec: unknown part or attribute")
)
