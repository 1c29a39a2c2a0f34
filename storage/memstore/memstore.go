// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memstore provides a reference, in-memory implementation of
// chronotree.Storage. It is a collaborator for the engine, not part of it
// (spec.md §1 explicitly scopes "a simple in-memory storage backend" out of
// the core), grounded on store/leveldb/db.go's mutex-guarded store and
// accdb/memorydb/memorydb.go's map[string][]byte representation.
package memstore

import (
	"crypto/sha1"
	"encoding/hex"
	"sync"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/rmichela/Bastion"
)

// encodedNode is the canonical, order-sensitive wire shape hashed to
// produce a Node's Hash. Field order here is part of the contract: RLP
// encodes a struct's fields positionally, so reordering this struct would
// change every hash this store has ever produced.
type encodedNode struct {
	Type         uint8
	Parent       string
	Predecessors []string
	Payload      []byte
}

// Store is an in-memory, content-addressable chronotree.Storage. It is safe
// for concurrent use by multiple ChronoTree replicas sharing one Store
// (spec.md §5), guarded by a single mutex the way store/leveldb's db does.
type Store struct {
	mu   sync.Mutex
	byID map[chronotree.Hash]chronotree.Node
}

// New returns an empty Store.
func New() *Store {
	return &Store{byID: make(map[chronotree.Hash]chronotree.Node)}
}

var _ chronotree.Storage = (*Store)(nil)

// Save implements chronotree.Storage. It clears node.Hash before hashing so
// that the digest is a pure function of (Type, Parent, Predecessors,
// Payload), as chronotree.Storage requires, then hashes the RLP-canonical
// encoding of those fields with SHA-1 (spec.md §6: "the reference uses
// SHA-1 of a canonical object serialisation").
func (s *Store) Save(node chronotree.Node, treeName string) (chronotree.Hash, error) {
	node.Hash = chronotree.HashNotSet

	enc := encodedNode{
		Type:         uint8(node.Type),
		Parent:       string(node.Parent),
		Predecessors: hashesToStrings(node.Predecessors),
		Payload:      node.Payload,
	}
	raw, err := rlp.EncodeToBytes(enc)
	if err != nil {
		return "", err
	}
	sum := sha1.Sum(raw)
	hash := chronotree.Hash(hex.EncodeToString(sum[:]))

	s.mu.Lock()
	defer s.mu.Unlock()
	node.Hash = hash
	s.byID[hash] = node

	log.Debug("memstore: saved node", "tree", treeName, "hash", hash, "type", node.Type)
	return hash, nil
}

// Find implements chronotree.Storage.
func (s *Store) Find(hash chronotree.Hash, treeName string) (chronotree.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.byID[hash]
	if !ok {
		return chronotree.Node{}, &notFoundError{hash: hash}
	}
	return n, nil
}

// Delete implements chronotree.Storage. Deleting a hash does not invalidate
// Node values previously returned by Find — callers may still hold copies.
func (s *Store) Delete(hash chronotree.Hash, treeName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, hash)
	log.Debug("memstore: deleted node", "tree", treeName, "hash", hash)
	return nil
}

// Len returns the number of hashes currently stored. Diagnostic only.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

func hashesToStrings(hs []chronotree.Hash) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = string(h)
	}
	return out
}

type notFoundError struct {
	hash chronotree.Hash
}

func (e *notFoundError) Error() string {
	return "memstore: hash not found: " + string(e.hash)
}
