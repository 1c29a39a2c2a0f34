// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronotree

// Add publishes a new Content node rooted at the current bitter end
// (spec.md §4.5). n must be of type Content; its Hash and Predecessors
// fields are ignored and overwritten. n.Parent may name an existing Content
// hash to reply to, or be left as HashNotSet/empty for a root post.
//
// Per spec.md Open Question 2, n.Parent is never validated against
// known_nodes: a node whose parent is unknown to this replica is silently
// accepted, matching the reference implementation's documented behavior.
//
// Add returns the receiver to allow chaining, mirroring spec.md §4.5's
// "self" return contract.
func (t *ChronoTree) Add(n Node) (*ChronoTree, error) {
	n.Type = Content
	if n.Parent == "" {
		n.Parent = HashNotSet
	}

	// Predecessors = loose_ends \ {parent}, sorted (spec.md §4.5 step 1).
	preds := t.looseEnds.Clone()
	preds.Remove(n.Parent)
	n.Predecessors = preds.Sorted(lessHash)

	h, err := t.storage.Save(n, t.name)
	if err != nil {
		return nil, newError(KindStorageSaveFailure, "chronotree: Add: failed to save node: %v", err)
	}
	n.Hash = h
	t.knownNodes[h] = n

	for _, p := range n.Predecessors {
		t.looseEnds.Remove(p)
	}
	t.looseEnds.Remove(n.Parent)
	t.looseEnds.Add(h)

	if err := t.synthesizeBitterEnd(); err != nil {
		return nil, err
	}
	t.log.Infof("Add: new Content node %s (parent=%s, %d predecessors)", h, n.Parent, len(n.Predecessors))
	return t, nil
}
