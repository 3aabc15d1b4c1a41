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

// Package abstract implements the binary search tree core shared by the
// tree variants in this module. Values are ordered by a comparison function
// provided at construction; larger values go right. Duplicates are
// conflated with the existing node: the tree is a set, not a multiset.
//
// Beyond the basic Search, Insert, and Delete, the package exports the
// low-level structural primitives (Find, InsertAt, InsertRoot, Remove,
// RotateUp, FixHeights) the variant packages restructure the tree with.
// Misusing them can break the tree's invariants; they are not intended for
// general use.
package abstract

// Tree is a binary search tree with explicit parent links and per-node
// height bookkeeping.
//
// Operations are not safe for concurrent use by multiple goroutines;
// callers must serialize access externally. Rotations and splices leave the
// structure transiently inconsistent mid-operation.
type Tree[T any] struct {
	root   *Node[T]
	length int
	cmp    func(T, T) int
}

// MakeTree constructs a Tree which orders values using cmp.
func MakeTree[T any](cmp func(T, T) int) Tree[T] {
	return Tree[T]{cmp: cmp}
}

// Compare compares two values using the same comparison function as the
// Tree.
func (t *Tree[T]) Compare(a, b T) int { return t.cmp(a, b) }

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int { return t.length }

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Reset removes all values from the tree.
func (t *Tree[T]) Reset() {
	t.root = nil
	t.length = 0
}

// Find descends from the root looking for v. It returns the matching node,
// or nil, together with the last non-nil node the descent visited. On a
// miss that second node is the attachment point for an insertion of v.
func (t *Tree[T]) Find(v T) (n, hot *Node[T]) {
	n = t.root
	for n != nil {
		c := t.cmp(v, n.value)
		if c == 0 {
			return n, hot
		}
		hot = n
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil, hot
}

// Search returns the node holding v, or nil if v is not present.
func (t *Tree[T]) Search(v T) *Node[T] {
	n, _ := t.Find(v)
	return n
}

// Insert adds v to the tree and returns its node. If v is already present
// the existing node is returned and the tree is unchanged.
func (t *Tree[T]) Insert(v T) *Node[T] {
	n, hot := t.Find(v)
	if n != nil {
		return n
	}
	return t.InsertAt(hot, v)
}

// InsertAt attaches a new node holding v under hot, which must be the
// attachment point returned by Find for v, and propagates heights upward.
// A nil hot makes the new node the root of an empty tree.
func (t *Tree[T]) InsertAt(hot *Node[T], v T) *Node[T] {
	n := &Node[T]{value: v, parent: hot}
	switch {
	case hot == nil:
		t.root = n
	case t.cmp(v, hot.value) < 0:
		hot.left = n
	default:
		hot.right = n
	}
	t.length++
	t.FixHeights(hot)
	return n
}

// Delete removes v from the tree. It returns the removed value and whether
// a matching node was found. Deleting from an empty tree or deleting an
// absent value is a no-op.
func (t *Tree[T]) Delete(v T) (removed T, found bool) {
	n, _ := t.Find(v)
	if n == nil {
		return removed, false
	}
	removed = n.value
	t.Remove(n)
	return removed, true
}

// Remove physically deletes n, which must be a node of this tree. A node
// with two children swaps values with its in-order successor and the
// successor node, which has at most one child, is unlinked instead. Remove
// returns the parent of the physically removed node, the anchor the
// variants restructure from after a deletion.
func (t *Tree[T]) Remove(n *Node[T]) *Node[T] {
	if n.left != nil && n.right != nil {
		s := n.right.min()
		n.value = s.value
		n = s
	}
	c := n.left
	if c == nil {
		c = n.right
	}
	p := n.parent
	t.replaceChild(p, n, c)
	n.left, n.right, n.parent = nil, nil, nil
	t.length--
	t.FixHeights(p)
	return p
}

// replaceChild links repl into the slot of p that old occupies, or makes
// repl the root when p is nil. The slot is chosen by node identity, never
// by comparing values.
func (t *Tree[T]) replaceChild(p, old, repl *Node[T]) {
	switch {
	case p == nil:
		t.root = repl
	case p.left == old:
		p.left = repl
	default:
		p.right = repl
	}
	if repl != nil {
		repl.parent = p
	}
}

// FixHeights recomputes heights walking from n to the root. The walk stops
// at the first ancestor whose recomputed height equals its prior height,
// since nothing above it can have changed.
func (t *Tree[T]) FixHeights(n *Node[T]) {
	for ; n != nil; n = n.parent {
		if !n.updateHeight() {
			return
		}
	}
}

// InsertRoot makes a new node holding v the root, splitting the current
// root along the comparison boundary: the new root adopts one of the old
// root's subtrees and the old root becomes its child on the other side.
// v must not already be present. Used by the splay variant, whose accesses
// leave the attachment point at the root.
func (t *Tree[T]) InsertRoot(v T) *Node[T] {
	old := t.root
	n := &Node[T]{value: v}
	if old != nil {
		if t.cmp(v, old.value) < 0 {
			n.left = old.left
			old.left = nil
			n.right = old
		} else {
			n.right = old.right
			old.right = nil
			n.left = old
		}
		if n.left != nil {
			n.left.parent = n
		}
		if n.right != nil {
			n.right.parent = n
		}
		old.updateHeight()
		n.updateHeight()
	}
	t.root = n
	t.length++
	return n
}
