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

// Package avl implements a height-balanced binary search tree. After every
// insert and delete the subtree heights at each node are kept within one of
// each other, bounding the depth, and so every operation, at O(log n).
package avl

import "github.com/ajwerner/bst/abstract"

// Tree is an AVL tree.
type Tree[T any] struct {
	t abstract.Tree[T]
}

// New constructs a Tree which orders values using cmp.
func New[T any](cmp func(T, T) int) *Tree[T] {
	return &Tree[T]{t: abstract.MakeTree(cmp)}
}

// Insert adds v to the tree, restores the balance invariant, and returns
// v's node. If v is already present the existing node is returned and the
// tree is unchanged.
func (t *Tree[T]) Insert(v T) *abstract.Node[T] {
	n, hot := t.t.Find(v)
	if n != nil {
		return n
	}
	n = t.t.InsertAt(hot, v)
	t.rebalance(n.Parent(), true)
	return n
}

// Delete removes v and rebalances every ancestor on the path from the
// splice point to the root. It returns the removed value and whether a
// matching node was found.
func (t *Tree[T]) Delete(v T) (removed T, found bool) {
	n, _ := t.t.Find(v)
	if n == nil {
		return removed, false
	}
	removed = n.Value()
	anchor := t.t.Remove(n)
	t.rebalance(anchor, false)
	return removed, true
}

// Search returns the node holding v, or nil if v is not present.
func (t *Tree[T]) Search(v T) *abstract.Node[T] { return t.t.Search(v) }

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int { return t.t.Len() }

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[T]) Root() *abstract.Node[T] { return t.t.Root() }

// Reset removes all values from the tree.
func (t *Tree[T]) Reset() { t.t.Reset() }

// MakeIter returns an in-order iterator positioned before the first value.
func (t *Tree[T]) MakeIter() abstract.Iterator[T] { return t.t.MakeIter() }

// rebalance walks from n to the root resolving every node whose subtree
// heights differ by more than one. A rotation can shorten the rotated
// subtree, so heights above it are recomputed before the walk continues.
// An insertion is fully repaired by the first rotation; a deletion keeps
// walking.
func (t *Tree[T]) rebalance(n *abstract.Node[T], insertion bool) {
	for n != nil {
		p := n.Parent()
		if t.rebalanceNode(n) {
			t.t.FixHeights(p)
			if insertion {
				return
			}
		}
		n = p
	}
}

// rebalanceNode restores the balance invariant at n, reporting whether a
// rotation was performed. The rotation is chosen by the heavier child's
// heavier side: the same side takes a single rotation of the child,
// opposite sides take a double rotation through the grandchild.
func (t *Tree[T]) rebalanceNode(n *abstract.Node[T]) bool {
	switch bf := n.Left().Height() - n.Right().Height(); {
	case bf > 1:
		if l := n.Left(); l.Left().Height() >= l.Right().Height() {
			t.t.RotateUp(l)
		} else {
			lr := l.Right()
			t.t.RotateUp(lr)
			t.t.RotateUp(lr)
		}
	case bf < -1:
		if r := n.Right(); r.Right().Height() >= r.Left().Height() {
			t.t.RotateUp(r)
		} else {
			rl := r.Left()
			t.t.RotateUp(rl)
			t.t.RotateUp(rl)
		}
	default:
		return false
	}
	return true
}
