// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronotree

import "fmt"

// Kind identifies the taxonomy of an error returned by this package,
// independent of its message text. Modeled on v.io/v23/verror's
// (ID, New, ErrorID) pattern, minus the v.io/v23/context.T plumbing that
// pattern normally requires — see DESIGN.md for why that dependency was not
// carried over.
type Kind int

const (
	// KindUnknown is returned by Kind(err) for errors not raised by this
	// package (including nil).
	KindUnknown Kind = iota
	// KindUnknownHash is raised by GetNode when the hash is not in
	// known_nodes.
	KindUnknownHash
	// KindStorageNotFound is raised when Storage.Find cannot retrieve an
	// ancestor hash referenced by a known or fetched node.
	KindStorageNotFound
	// KindStorageSaveFailure is raised when Storage.Save fails.
	KindStorageSaveFailure
	// KindInvalidInput is reserved for future validation; see spec.md §7 —
	// the engine currently never raises it (Open Question, resolved as
	// silently-accept in SPEC_FULL.md §4).
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindUnknownHash:
		return "UnknownHash"
	case KindStorageNotFound:
		return "StorageNotFound"
	case KindStorageSaveFailure:
		return "StorageSaveFailure"
	case KindInvalidInput:
		return "InvalidInput"
	default:
		return "Unknown"
	}
}

// chronoError pairs a Kind with a formatted message, the way verror pairs an
// ID with a formatted message string.
type chronoError struct {
	kind Kind
	msg  string
}

func (e *chronoError) Error() string {
	return e.msg
}

// newError builds a chronoError of the given kind, formatting msg/args with
// fmt.Sprintf the same way dag.go's own fmt.Errorf call sites do.
func newError(kind Kind, format string, args ...interface{}) error {
	return &chronoError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// ErrorKind returns the Kind of err, or KindUnknown if err was not raised by
// this package. Mirrors verror.ErrorID(err).
func ErrorKind(err error) Kind {
	ce, ok := err.(*chronoError)
	if !ok || ce == nil {
		return KindUnknown
	}
	return ce.kind
}
