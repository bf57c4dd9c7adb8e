package roadgraph

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned for malformed input: negative ids, self comparison of edges and so on.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAmbiguousResult is returned when a query which requires a unique answer matches several entities.
	ErrAmbiguousResult = errors.New("ambiguous result")
	// ErrInvalidState is returned when an operation does not fit current lifecycle phase or a value can't be represented.
	ErrInvalidState = errors.New("invalid state")
	// ErrStructuralMismatch is returned when two paths (or their graphs) are not comparable at all.
	ErrStructuralMismatch = errors.New("structural mismatch")
	ErrEdgeNotFound       = errors.New("edge not found")
	ErrNodeNotFound       = errors.New("node not found")
	ErrNoRoute            = errors.New("no route")
)
