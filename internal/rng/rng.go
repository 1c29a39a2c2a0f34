// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rng provides a deterministic, seeded random source for tests and
// the chronotreed demo's randomised-convergence scenario (spec.md §8,
// scenario 6). It is a test/demo collaborator, not part of the engine:
// spec.md §1 lists "a deterministic RNG for tests" among the rest of the
// repository that is explicitly out of scope for the merge engine itself.
package rng

import "math/rand"

// New returns a *rand.Rand seeded deterministically from seed, grounded on
// dag.go's own txGen field (rand.New(rand.NewSource(...))), substituting a
// caller-supplied seed for dag.go's wall-clock seed so that test runs and
// demo runs are reproducible.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Pick returns a uniformly random element of items using r. It panics if
// items is empty; callers are expected to only call it on non-empty slices
// (e.g. a replica's own known Content hashes, which always has at least one
// member once a tree has a root).
func Pick[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}
