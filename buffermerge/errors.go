package buffermerge

import "errors"

var (
	// ErrNilTree indicates BuildBuffer was given a nil tree.Tree.
	ErrNilTree = errors.New("buffermerge: tree is nil")

	// ErrNilRealGraph indicates Materialize was given a nil real graph.
	ErrNilRealGraph = errors.New("buffermerge: real graph is nil")

	// ErrNilIDManager indicates Materialize was given a nil idmanager.Manager.
	ErrNilIDManager = errors.New("buffermerge: id manager is nil")

	// ErrUnresolvedGhost indicates a ghost node reference was used before
	// BuildBuffer registered it in the ghost↦buffer map; this must never
	// happen for a Buffer produced by BuildBuffer.
	ErrUnresolvedGhost = errors.New("buffermerge: ghost node not registered in buffer")

	// ErrEmptyBuffer indicates Materialize was called on a Buffer with no
	// spores, which would push an empty idmanager.Group.
	ErrEmptyBuffer = errors.New("buffermerge: buffer has no spores to materialize")
)
