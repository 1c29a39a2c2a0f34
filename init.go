// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronotree

import (
	"container/list"

	"github.com/rmichela/Bastion/internal/hashset"
)

// attach seeds the replica from an existing digest head, per spec.md §4.4.
// It walks the DAG rooted at head through Storage breadth-first (grounded
// on dag.go's ancestorIter, which uses container/list the same way),
// adding every node reachable from head to known_nodes.
func (t *ChronoTree) attach(head Hash) error {
	root, err := t.storage.Find(head, t.name)
	if err != nil {
		return newError(KindStorageNotFound, "chronotree: attach: head %q not found: %v", head, err)
	}
	root.Hash = head

	discovered := map[Hash]Node{head: root}
	visited := map[Hash]bool{head: true}
	queue := list.New()
	queue.PushBack(head)

	for queue.Len() > 0 {
		front := queue.Remove(queue.Front()).(Hash)
		node := discovered[front]

		refs := append([]Hash{}, node.Predecessors...)
		if node.Parent != HashNotSet {
			refs = append(refs, node.Parent)
		}
		for _, ref := range refs {
			if visited[ref] {
				continue
			}
			visited[ref] = true
			n, err := t.storage.Find(ref, t.name)
			if err != nil {
				return newError(KindStorageNotFound, "chronotree: attach: ancestor %q not found: %v", ref, err)
			}
			n.Hash = ref
			discovered[ref] = n
			queue.PushBack(ref)
		}
	}

	for h, n := range discovered {
		t.knownNodes[h] = n
	}
	t.bitterEnd = head

	// Head-type handling (spec.md §4.4 step 3).
	if root.Type == Content {
		t.looseEnds = hashset.New(head)
		t.log.Infof("attached to Content head %s", head)
		return nil
	}

	// An Aggregate's Predecessors are, by construction (newAggregate,
	// synthesizeBitterEnd), exactly the loose-ends set that was
	// current when it was synthesised; the Aggregate itself is excluded
	// from loose_ends per spec.md invariant 4.
	t.looseEnds = hashset.New(root.Predecessors...)
	t.log.Infof("attached to Aggregate head %s, %d loose ends", head, t.looseEnds.Len())
	return nil
}
