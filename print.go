// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronotree

import "fmt"

// Print returns a human-readable dump of the replica's state, grounded on
// dag.go's dump() (a vlog.VI(1).Infof walk of heads/nodes/trans). Purely
// diagnostic: correctness never depends on Print being called.
func (t *ChronoTree) Print() string {
	s := fmt.Sprintf("ChronoTree %q: bitter_end=%s\n", t.name, t.bitterEnd)
	s += fmt.Sprintf("  loose_ends (%d):\n", t.looseEnds.Len())
	for _, h := range t.LooseEnds() {
		s += fmt.Sprintf("    %s\n", h)
	}
	s += fmt.Sprintf("  known_nodes (%d):\n", len(t.knownNodes))
	for _, n := range t.KnownNodes() {
		s += fmt.Sprintf("    %s: type=%s parent=%s predecessors=%v\n", n.Hash, n.Type, n.Parent, n.Predecessors)
	}
	t.log.Infof("Print: %d loose end(s), %d known node(s)", t.looseEnds.Len(), len(t.knownNodes))
	return s
}
