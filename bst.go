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

// Package bst implements a family of binary search trees with explicit
// parent links: a plain, unbalanced tree here, a self-adjusting tree in
// splay, and a height-balanced tree in avl. The variants share the core in
// abstract.
package bst

import "github.com/ajwerner/bst/abstract"

// Tree is a plain binary search tree. No rebalancing is performed, so the
// depth, and with it the cost of each operation, is bounded only by the
// insertion order.
type Tree[T any] struct {
	t abstract.Tree[T]
}

// New constructs a Tree which orders values using cmp.
func New[T any](cmp func(T, T) int) *Tree[T] {
	return &Tree[T]{t: abstract.MakeTree(cmp)}
}

// Insert adds v to the tree and returns its node. If v is already present
// the existing node is returned and the tree is unchanged.
func (t *Tree[T]) Insert(v T) *abstract.Node[T] {
	return t.t.Insert(v)
}

// Search returns the node holding v, or nil if v is not present.
func (t *Tree[T]) Search(v T) *abstract.Node[T] {
	return t.t.Search(v)
}

// Delete removes v from the tree. It returns the removed value and whether
// a matching node was found.
func (t *Tree[T]) Delete(v T) (removed T, found bool) {
	return t.t.Delete(v)
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int { return t.t.Len() }

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[T]) Root() *abstract.Node[T] { return t.t.Root() }

// Reset removes all values from the tree.
func (t *Tree[T]) Reset() { t.t.Reset() }

// Iterator provides in-order traversal over a Tree.
type Iterator[T any] struct {
	it abstract.Iterator[T]
}

// MakeIter returns a new Iterator positioned before the first value.
func (t *Tree[T]) MakeIter() Iterator[T] {
	return Iterator[T]{it: t.t.MakeIter()}
}

// First seeks to the smallest value in the tree.
func (it *Iterator[T]) First() { it.it.First() }

// Next advances to the in-order successor.
func (it *Iterator[T]) Next() { it.it.Next() }

// Valid returns whether the iterator is positioned on a node.
func (it *Iterator[T]) Valid() bool { return it.it.Valid() }

// Cur returns the value at the current position.
func (it *Iterator[T]) Cur() T { return it.it.Cur() }
