package blaze

import "errors"

// Package-level sentinel errors, declared the way the teacher declares
// ErrNoPostingList / ErrKeyNotFound: comparable with errors.Is, never built
// from a format string.
var (
	// ErrTermNotFound is returned by the query processor when a stemmed query
	// term has no entry in the meta index.
	ErrTermNotFound = errors.New("blaze: term not found in meta index")

	// ErrNoMoreChunks signals that a posting generator has been fully drained.
	ErrNoMoreChunks = errors.New("blaze: no more posting chunks")

	// ErrMalformedLine is returned by the C3 parser for a line that does not
	// match the grammar; callers skip the line rather than propagate this.
	ErrMalformedLine = errors.New("blaze: malformed inverted index line")

	// ErrUsage signals a CLI invocation with the wrong argument count.
	ErrUsage = errors.New("blaze: usage error")

	// ErrEmptyQueue is returned by the merge engine if it is invoked with no
	// partial runs at all.
	ErrEmptyQueue = errors.New("blaze: merge queue is empty")
)
