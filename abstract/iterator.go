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

// Iterator provides in-order traversal over a Tree. It walks parent links
// rather than keeping a descent stack. Any mutation of the tree invalidates
// the iterator.
type Iterator[T any] struct {
	t *Tree[T]
	n *Node[T]
}

// MakeIter returns a new Iterator positioned before the first value.
func (t *Tree[T]) MakeIter() Iterator[T] {
	return Iterator[T]{t: t}
}

// First seeks to the smallest value in the tree.
func (i *Iterator[T]) First() {
	if i.t.root == nil {
		i.n = nil
		return
	}
	i.n = i.t.root.min()
}

// Next advances to the in-order successor.
func (i *Iterator[T]) Next() {
	if i.n != nil {
		i.n = i.n.next()
	}
}

// Valid returns whether the iterator is positioned on a node.
func (i *Iterator[T]) Valid() bool { return i.n != nil }

// Cur returns the value at the current position.
func (i *Iterator[T]) Cur() T { return i.n.value }

// Node returns the node at the current position.
func (i *Iterator[T]) Node() *Node[T] { return i.n }
