// Package logging provides the leveled logging sink injected into every
// sporegraph manager, replacing ad-hoc prints with an explicit dependency.
//
// Callers construct a Sink once (Discard for tests, New(os.Stderr, ...) for
// a CLI) and pass it into constructors; nothing in this module reaches for a
// package-level logger.
package logging
