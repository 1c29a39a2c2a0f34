// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rng_test

import (
	"testing"

	"github.com/rmichela/Bastion/internal/rng"
)

func TestNewIsDeterministic(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	r1 := rng.New(7)
	r2 := rng.New(7)

	for i := 0; i < 20; i++ {
		p1 := rng.Pick(r1, items)
		p2 := rng.Pick(r2, items)
		if p1 != p2 {
			t.Fatalf("pick %d diverged: %q != %q", i, p1, p2)
		}
	}
}

func TestDifferentSeedsCanDiverge(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	r1 := rng.New(1)
	r2 := rng.New(2)

	same := true
	for i := 0; i < 20; i++ {
		if rng.Pick(r1, items) != rng.Pick(r2, items) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to eventually produce different picks")
	}
}

func TestPickSingleElement(t *testing.T) {
	r := rng.New(1)
	items := []string{"only"}
	for i := 0; i < 5; i++ {
		if got := rng.Pick(r, items); got != "only" {
			t.Fatalf("Pick = %q, want %q", got, "only")
		}
	}
}
