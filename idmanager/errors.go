package idmanager

import "errors"

// ErrNoHistory is returned by UndoLast when there is no group to undo.
var ErrNoHistory = errors.New("idmanager: no group to undo")

// ErrEmptyGroup is returned by BeginGroup's Commit when no spores or links
// were recorded; an empty group is never pushed onto the undo stack.
var ErrEmptyGroup = errors.New("idmanager: group is empty")
