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

// zig rotates n clockwise over its parent: n must be its parent's left
// child. n takes its parent's place under the grandparent, the parent
// becomes n's right child and adopts n's former right subtree as its left
// subtree. All four parent back-references are repaired, as are the two
// touched heights. O(1), pure link rewiring; no nodes are created or
// destroyed.
func (t *Tree[T]) zig(n *Node[T]) {
	p := n.parent
	g := p.parent
	p.left = n.right
	if p.left != nil {
		p.left.parent = p
	}
	n.right = p
	p.parent = n
	t.replaceChild(g, p, n)
	p.updateHeight()
	n.updateHeight()
}

// zag is the mirror of zig: n must be its parent's right child and is
// rotated counter-clockwise over it.
func (t *Tree[T]) zag(n *Node[T]) {
	p := n.parent
	g := p.parent
	p.right = n.left
	if p.right != nil {
		p.right.parent = p
	}
	n.left = p
	p.parent = n
	t.replaceChild(g, p, n)
	p.updateHeight()
	n.updateHeight()
}

// RotateUp promotes n into its parent's position with the single rotation
// matching the side n occupies. n must not be the root. Heights above the
// rotation point are not recomputed; callers that care run FixHeights.
func (t *Tree[T]) RotateUp(n *Node[T]) {
	if n.parent.left == n {
		t.zig(n)
	} else {
		t.zag(n)
	}
}
