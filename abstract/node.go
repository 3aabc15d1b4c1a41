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

package abstract

// Node is a single element of a Tree. A node owns its children; the parent
// link is a non-owning back-reference and is nil for the root. A child's
// parent always points at the node which currently holds it.
type Node[T any] struct {
	value  T
	height int
	left   *Node[T]
	right  *Node[T]
	parent *Node[T]
}

// Value returns the value stored in the node.
func (n *Node[T]) Value() T { return n.value }

// Height returns the height of the subtree rooted at n. A nil node has
// height -1 and a leaf has height 0.
func (n *Node[T]) Height() int {
	if n == nil {
		return -1
	}
	return n.height
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// Parent returns the parent node, or nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	if n == nil {
		return nil
	}
	return n.parent
}

// updateHeight recomputes n's height from its children and reports whether
// the stored height changed. The comparison happens before the stored value
// is overwritten.
func (n *Node[T]) updateHeight() bool {
	h := 1 + max(n.left.Height(), n.right.Height())
	if h == n.height {
		return false
	}
	n.height = h
	return true
}

// min returns the leftmost node of the subtree rooted at n.
func (n *Node[T]) min() *Node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// next returns n's in-order successor, walking parent links when the right
// subtree is empty.
func (n *Node[T]) next() *Node[T] {
	if n.right != nil {
		return n.right.min()
	}
	p := n.parent
	for p != nil && p.right == n {
		n, p = p, p.parent
	}
	return p
}
