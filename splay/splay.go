// Copyright 2022 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package splay implements a self-adjusting binary search tree. Every
// access moves the accessed node, or on a miss the last node visited, to
// the root by rotation. No balance metadata is consulted; the restructuring
// alone gives amortized logarithmic operations over a sequence of accesses,
// not a per-operation worst case.
package splay

import "github.com/ajwerner/bst/abstract"

// Tree is a splay tree.
type Tree[T any] struct {
	t abstract.Tree[T]
}

// New constructs a Tree which orders values using cmp.
func New[T any](cmp func(T, T) int) *Tree[T] {
	return &Tree[T]{t: abstract.MakeTree(cmp)}
}

// splay rotates n to the root. With a grandparent present, when n and its
// parent sit on the same side of their respective parents the grandparent
// edge is rotated first (zig-zig); on opposite sides n is rotated over both
// (zig-zag). When the parent is the root a single rotation finishes. The
// loop runs O(depth of n) rotations.
func (t *Tree[T]) splay(n *abstract.Node[T]) {
	for {
		p := n.Parent()
		if p == nil {
			return
		}
		g := p.Parent()
		switch {
		case g == nil:
			t.t.RotateUp(n)
		case (g.Left() == p) == (p.Left() == n):
			t.t.RotateUp(p)
			t.t.RotateUp(n)
		default:
			t.t.RotateUp(n)
			t.t.RotateUp(n)
		}
	}
}

// Search returns the node holding v, or nil if v is not present. The node
// the search terminated on is splayed to the root, so even a miss reshapes
// the tree.
func (t *Tree[T]) Search(v T) *abstract.Node[T] {
	n, hot := t.t.Find(v)
	if n != nil {
		t.splay(n)
		return n
	}
	if hot != nil {
		t.splay(hot)
	}
	return nil
}

// Insert adds v and makes its node the root: the search splays the
// attachment point to the root and the new node splits it along the
// comparison boundary. If v is already present the existing node is splayed
// and returned.
func (t *Tree[T]) Insert(v T) *abstract.Node[T] {
	if n := t.Search(v); n != nil {
		return n
	}
	return t.t.InsertRoot(v)
}

// Delete removes v, splaying the tree whether or not v was found. A found
// node is splayed to the root and then removed by the base splice rule. It
// returns the removed value and whether a matching node was found.
func (t *Tree[T]) Delete(v T) (removed T, found bool) {
	n := t.Search(v)
	if n == nil {
		return removed, false
	}
	removed = n.Value()
	t.t.Remove(n)
	return removed, true
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int { return t.t.Len() }

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[T]) Root() *abstract.Node[T] { return t.t.Root() }

// Reset removes all values from the tree.
func (t *Tree[T]) Reset() { t.t.Reset() }

// MakeIter returns an in-order iterator positioned before the first value.
// Iteration does not splay.
func (t *Tree[T]) MakeIter() abstract.Iterator[T] { return t.t.MakeIter() }
