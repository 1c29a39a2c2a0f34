// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronotree

// Storage is the externally supplied content-addressable byte store that
// ChronoTree is built on. Any key-value store keyed by content hash
// suffices; this package ships a reference in-memory implementation in
// storage/memstore, which is a collaborator, not part of the engine itself.
//
// Implementations MUST be deterministic: saving the same logical content
// (same Type/Parent/Predecessors/Payload) twice must return equal hashes.
// The node's own Hash field must be cleared before hashing so that the
// digest is a pure function of the remaining fields.
type Storage interface {
	// Save persists node's content and returns its new hash. treeName is
	// an optional diagnostic passthrough with no semantic effect.
	Save(node Node, treeName string) (Hash, error)

	// Find returns the node previously saved under hash. It returns a
	// non-nil error if hash is unknown to this store; ChronoTree reports
	// such a failure to its own callers as an error with ErrorKind ==
	// KindStorageNotFound. treeName is an optional diagnostic passthrough.
	//
	// Find does not invalidate previously returned Node values — callers
	// may continue to hold them even after a later Delete.
	Find(hash Hash, treeName string) (Node, error)

	// Delete removes the hash -> bytes mapping for hash. Implementations
	// MAY treat this as a no-op; only Aggregate hashes are ever deleted
	// by the engine, and Aggregates are always reconstructable from the
	// loose-ends set that produced them.
	Delete(hash Hash, treeName string) error
}
