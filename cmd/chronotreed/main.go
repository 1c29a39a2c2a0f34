// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chronotreed is a small demo binary exercising the chronotree
// library end to end: it builds a handful of replicas, has each add posts,
// merges them pairwise, and prints the converged state. Grounded on the
// teacher's lightweight cmd/.../main.go binaries (e.g. syncbased/main.go's
// flag-driven startup) rather than the heavier veyron/cmdline library the
// rest of go.ref uses for its RPC-serving daemons — chronotreed has no RPC
// surface to configure.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"

	chronotree "github.com/rmichela/Bastion"
	"github.com/rmichela/Bastion/internal/rng"
	"github.com/rmichela/Bastion/storage/memstore"
)

func main() {
	replicas := flag.Int("replicas", 3, "number of replicas to simulate")
	rounds := flag.Int("rounds", 5, "number of add/merge rounds")
	seed := flag.Int64("seed", 1, "seed for the deterministic post-placement RNG")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, log.LevelDebug, true)))
	}

	if err := run(*replicas, *rounds, *seed); err != nil {
		fmt.Fprintln(os.Stderr, "chronotreed:", err)
		os.Exit(1)
	}
}

func run(numReplicas, rounds int, seed int64) error {
	store := memstore.New()

	root, err := store.Save(chronotree.Node{Type: chronotree.Content, Parent: chronotree.HashNotSet, Payload: []byte("root")}, "demo")
	if err != nil {
		return err
	}

	trees := make([]*chronotree.ChronoTree, numReplicas)
	for i := range trees {
		name := fmt.Sprintf("replica-%d", i)
		t, err := chronotree.New(store, root, name)
		if err != nil {
			return err
		}
		trees[i] = t
	}

	r := rng.New(seed)
	for round := 0; round < rounds; round++ {
		for i, t := range trees {
			known := t.KnownNodes()
			var contentHashes []chronotree.Hash
			for _, n := range known {
				if n.Type == chronotree.Content {
					contentHashes = append(contentHashes, n.Hash)
				}
			}
			parent := rng.Pick(r, contentHashes)
			payload := []byte(fmt.Sprintf("replica-%d-round-%d", i, round))
			if _, err := t.Add(chronotree.Node{Parent: parent, Payload: payload}); err != nil {
				return err
			}
		}
		for i, t := range trees {
			for j, other := range trees {
				if i == j {
					continue
				}
				if _, err := t.Merge(other.BitterEnd()); err != nil {
					return err
				}
			}
		}
	}

	for _, t := range trees {
		fmt.Println(t.Print())
	}
	return nil
}
