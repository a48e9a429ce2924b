package graph

import "errors"

var (
	// ErrNilSpore indicates AddSpore was given a nil *sporelogic.Spore.
	ErrNilSpore = errors.New("graph: spore is nil")

	// ErrSporeNotFound indicates an operation referenced a non-existent spore.
	ErrSporeNotFound = errors.New("graph: spore not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrNilResolver indicates CopyStructureFrom was given a nil resolver.
	ErrNilResolver = errors.New("graph: resolver is nil")

	// ErrNilOtherGraph indicates CopyStructureFrom was given a nil source graph.
	ErrNilOtherGraph = errors.New("graph: source graph is nil")
)
