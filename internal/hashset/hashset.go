// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hashset provides a deterministic, sorted-enumeration set used by
// ChronoTree to track its loose ends. It answers
// spec.md §9's "Collections library ... set" re-architecture note: dag.go
// tracks the analogous information with raw map[Version]struct{} values
// (graftInfo.newNodes, graftInfo.newHeads); this package gives that same
// shape a sorted, deterministic enumeration on demand.
package hashset

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Set is a mutable set of T, backed by golang-set/v2, with a deterministic
// sorted view available via Sorted.
type Set[T comparable] struct {
	inner mapset.Set[T]
}

// New returns a Set containing the given items.
func New[T comparable](items ...T) *Set[T] {
	return &Set[T]{inner: mapset.NewSet(items...)}
}

// Add inserts item into the set.
func (s *Set[T]) Add(item T) {
	s.inner.Add(item)
}

// Remove deletes item from the set, if present.
func (s *Set[T]) Remove(item T) {
	s.inner.Remove(item)
}

// Contains reports whether item is a member of the set.
func (s *Set[T]) Contains(item T) bool {
	return s.inner.Contains(item)
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return s.inner.Cardinality()
}

// Clone returns an independent copy of the set.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{inner: s.inner.Clone()}
}

// Slice returns the set's members in unspecified order.
func (s *Set[T]) Slice() []T {
	return s.inner.ToSlice()
}

// Sorted returns the set's members ordered by less, which must impose a
// total order over T. ChronoTree uses this for lexicographic Hash ordering,
// the ordering that makes bitter-end synthesis deterministic (spec.md §4.6).
func (s *Set[T]) Sorted(less func(a, b T) bool) []T {
	out := s.inner.ToSlice()
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
