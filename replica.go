// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronotree

import (
	"sort"

	"github.com/rmichela/Bastion/internal/hashset"
)

func lessHash(a, b Hash) bool { return a < b }

// ChronoTree is one replica's view of a content-addressed, append-only DAG.
// It is not safe for concurrent use by multiple goroutines; callers that
// share a ChronoTree across goroutines must add their own mutual exclusion
// (spec.md §5).
type ChronoTree struct {
	storage Storage
	name    string

	knownNodes map[Hash]Node
	looseEnds  *hashset.Set[Hash]
	bitterEnd  Hash

	log logger
}

// New constructs a ChronoTree backed by storage. If head is the empty
// string, a fresh empty Aggregate is synthesised and saved as the initial
// bitter end (spec.md §4.3). Otherwise the replica attaches to head by
// running the init/attach procedure (spec.md §4.4). name is an optional
// diagnostic label.
func New(storage Storage, head Hash, name string) (*ChronoTree, error) {
	t := &ChronoTree{
		storage:    storage,
		name:       name,
		knownNodes: make(map[Hash]Node),
		looseEnds:  hashset.New[Hash](),
		log:        newLogger(name),
	}

	if head == "" {
		agg := newAggregate(nil)
		h, err := storage.Save(agg, name)
		if err != nil {
			return nil, newError(KindStorageSaveFailure, "chronotree: failed to save initial empty aggregate: %v", err)
		}
		agg.Hash = h
		t.knownNodes[h] = agg
		t.bitterEnd = h
		t.log.Infof("new empty ChronoTree, bitter_end=%s", h)
		return t, nil
	}

	if err := t.attach(head); err != nil {
		return nil, err
	}
	return t, nil
}

// BitterEnd returns the replica's current summarising digest.
func (t *ChronoTree) BitterEnd() Hash {
	return t.bitterEnd
}

// LooseEnds returns the current set of leaf hashes, sorted lexicographically
// for deterministic comparison (spec.md §4.3).
func (t *ChronoTree) LooseEnds() []Hash {
	return t.looseEnds.Sorted(lessHash)
}

// KnownNodes returns the known Hash->Node mapping as a slice ordered by
// sorted Hash (spec.md §4.3).
func (t *ChronoTree) KnownNodes() []Node {
	hashes := make([]Hash, 0, len(t.knownNodes))
	for h := range t.knownNodes {
		hashes = append(hashes, h)
	}
	sort.Slice(hashes, func(i, j int) bool { return hashes[i] < hashes[j] })

	out := make([]Node, 0, len(hashes))
	for _, h := range hashes {
		out = append(out, t.knownNodes[h])
	}
	return out
}

// Name returns the replica's diagnostic label.
func (t *ChronoTree) Name() string {
	return t.name
}

// Storage returns the replica's backing store.
func (t *ChronoTree) Storage() Storage {
	return t.storage
}

// GetNode looks up hash in known_nodes. It returns an error with
// ErrorKind == KindUnknownHash if hash is not known to this replica.
func (t *ChronoTree) GetNode(hash Hash) (Node, error) {
	n, ok := t.knownNodes[hash]
	if !ok {
		return Node{}, newError(KindUnknownHash, "chronotree: unknown hash %q", hash)
	}
	return n, nil
}
