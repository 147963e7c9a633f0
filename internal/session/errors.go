// Package session holds the editable document together with its undo and
// redo history. A Session is driven from one goroutine, usually a host's
// event loop, and is not safe for concurrent use.
package session

import "errors"

var (
	// ErrIndexOutOfRange is returned when a section or entry position does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrSectionNotFound is returned when no section has the requested id.
	ErrSectionNotFound = errors.New("section not found")
	// ErrEntryKind is returned when an entry does not fit its section's layout.
	ErrEntryKind = errors.New("entry does not match section kind")
)
