// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronotree

// synthesizeBitterEnd recomputes and saves the replica's bitter end from its
// current loose_ends, evicting the previous bitter end if it was an
// Aggregate (spec.md §4.5 steps 5-6, §4.6 steps 4-5; Open Question 3 is
// resolved as "always evict", per spec.md's own forced invariant).
//
// It must only be called after loose_ends has been updated to its final
// value for the operation in progress.
func (t *ChronoTree) synthesizeBitterEnd() error {
	prev, prevKnown := t.knownNodes[t.bitterEnd]
	prevWasAggregate := prevKnown && prev.Type == Aggregate

	ends := t.looseEnds.Sorted(lessHash)

	var newBitterEnd Hash
	var newNode Node
	if len(ends) == 1 {
		newBitterEnd = ends[0]
		newNode = t.knownNodes[newBitterEnd]
	} else {
		agg := newAggregate(ends)
		h, err := t.storage.Save(agg, t.name)
		if err != nil {
			return newError(KindStorageSaveFailure, "chronotree: failed to save aggregate: %v", err)
		}
		agg.Hash = h
		newBitterEnd = h
		newNode = agg
		t.knownNodes[h] = agg
	}

	if prevWasAggregate && prev.Hash != newBitterEnd {
		if err := t.storage.Delete(prev.Hash, t.name); err != nil {
			t.log.Errorf("failed to delete superseded aggregate %s: %v", prev.Hash, err)
		}
		delete(t.knownNodes, prev.Hash)
	}

	t.bitterEnd = newBitterEnd
	t.log.Infof("bitter_end -> %s (%s), %d loose end(s)", newBitterEnd, newNode.Type, len(ends))
	return nil
}
