// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chronotree implements a content-addressed, append-only DAG of
// immutable posts supporting convergent merging across independently
// evolving replicas.
//
// A ChronoTree tracks an evolving set of loose ends (leaves of the DAG) and
// summarises them with a single digest, the bitter end, such that two
// replicas that have observed the same set of content converge to
// byte-identical summaries regardless of the order in which they learned
// about them.
package chronotree

// Hash is an opaque content-addressed label assigned by a Storage
// implementation at save time. Equality is bit-exact; ChronoTree never
// constructs a Hash itself.
type Hash string

// HashNotSet is the sentinel value for an absent parent link. A Storage
// implementation must never return this value from Save.
const HashNotSet = Hash("HASH_NOT_SET")

// NodeType tags a Node as either a user-authored Content post or a
// content-free Aggregate summarising a set of loose ends.
type NodeType int

const (
	// Content is an immutable, user-authored DAG node. It persists forever.
	Content NodeType = iota
	// Aggregate is a transient, content-free node naming a set of loose
	// ends under one hash. It is deleted from Storage as soon as it is
	// replaced by a later bitter end.
	Aggregate
)

func (t NodeType) String() string {
	switch t {
	case Content:
		return "Content"
	case Aggregate:
		return "Aggregate"
	default:
		return "Unknown"
	}
}

// Node is the single tagged value type underlying the ChronoTree DAG.
//
// Aggregates always carry Parent == HashNotSet and an empty Payload; this is
// not re-validated by the engine on every access, it is an invariant the
// engine itself maintains by construction (see newAggregate).
type Node struct {
	// Hash is the node's own content-addressed label, set by Storage on
	// save. It is ignored (and overwritten) on input to Save.
	Hash Hash
	// Type distinguishes Content from Aggregate.
	Type NodeType
	// Parent is the Content node this one replies to, or HashNotSet for
	// root Content nodes and for all Aggregates.
	Parent Hash
	// Predecessors is the sorted sequence of loose ends that existed
	// immediately before this node was created.
	Predecessors []Hash
	// Payload is the opaque, user-supplied application bytes. Always
	// empty for Aggregates; the engine never inspects it.
	Payload []byte
}

// newAggregate builds an unsaved Aggregate node over the given predecessors.
// predecessors must already be sorted (callers pass a hashset.Sorted result,
// or nil for the initial empty Aggregate) since predecessor order is part of
// what the hash commits to.
func newAggregate(predecessors []Hash) Node {
	return Node{
		Type:         Aggregate,
		Parent:       HashNotSet,
		Predecessors: predecessors,
	}
}
