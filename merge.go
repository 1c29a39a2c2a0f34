// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronotree

import "container/list"

// Merge folds a foreign digest other (typically a peer's bitter end) into
// the replica (spec.md §4.6). It returns the receiver to allow chaining.
//
// Determinism: predecessor lists are always sorted lexicographically before
// hashing (see synthesizeBitterEnd), Aggregates carry no payload, and
// merging an already-known hash is a no-op beyond the fast exit below — the
// properties that together make Merge commutative, associative and
// idempotent (spec.md §4.6 "Determinism rules").
func (t *ChronoTree) Merge(other Hash) (*ChronoTree, error) {
	// Fast exit (spec.md §4.6 step 1).
	if _, known := t.knownNodes[other]; known && other == t.bitterEnd {
		t.log.Infof("Merge: %s already bitter_end, no-op", other)
		return t, nil
	}

	root, err := t.storage.Find(other, t.name)
	if err != nil {
		return nil, newError(KindStorageNotFound, "chronotree: Merge: %q not found: %v", other, err)
	}
	root.Hash = other

	// An Aggregate never enters known_nodes or loose_ends on its own — it
	// is a transient summary, not a DAG node. Its Predecessors are the
	// real frontier to fold in, each treated as an independent root of
	// the traversal below.
	var frontier []Hash
	if root.Type == Aggregate {
		frontier = root.Predecessors
	} else {
		frontier = []Hash{other}
	}

	discovered := make(map[Hash]Node)
	visited := make(map[Hash]bool)
	order := make([]Hash, 0)
	queue := list.New()

	discover := func(h Hash) error {
		if visited[h] {
			return nil
		}
		visited[h] = true
		if _, known := t.knownNodes[h]; known {
			// Already known: Content nodes are immutable, so equal hash
			// implies equal subtree. Don't re-walk its ancestors.
			return nil
		}
		n, err := t.storage.Find(h, t.name)
		if err != nil {
			return newError(KindStorageNotFound, "chronotree: Merge: ancestor %q not found: %v", h, err)
		}
		n.Hash = h
		discovered[h] = n
		order = append(order, h)
		queue.PushBack(h)
		return nil
	}

	for _, h := range frontier {
		if err := discover(h); err != nil {
			return nil, err
		}
	}

	for queue.Len() > 0 {
		front := queue.Remove(queue.Front()).(Hash)
		node := discovered[front]

		refs := append([]Hash{}, node.Predecessors...)
		if node.Parent != HashNotSet {
			refs = append(refs, node.Parent)
		}
		for _, ref := range refs {
			if err := discover(ref); err != nil {
				return nil, err
			}
		}
	}

	if len(discovered) == 0 {
		// Merging a hash already present is a no-op beyond the fast exit.
		t.log.Infof("Merge: %s introduces no new nodes, no-op", other)
		return t, nil
	}

	// Loose-end recomputation (spec.md §4.6 step 3): each newly discovered
	// hash is added, and each hash it references is removed.
	for _, h := range order {
		t.knownNodes[h] = discovered[h]
	}
	for _, h := range order {
		t.looseEnds.Add(h)
	}
	for _, h := range order {
		node := discovered[h]
		t.looseEnds.Remove(node.Parent)
		for _, p := range node.Predecessors {
			t.looseEnds.Remove(p)
		}
	}

	// Bitter-end synthesis and Aggregate churn (spec.md §4.6 steps 4-5).
	if err := t.synthesizeBitterEnd(); err != nil {
		return nil, err
	}
	t.log.Infof("Merge: folded in %d new node(s) from %s, bitter_end=%s", len(order), other, t.bitterEnd)
	return t, nil
}
