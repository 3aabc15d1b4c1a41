package abstract

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes the root and each parent-child relationship of the tree to w,
// one line per edge, for manual inspection. The format is not stable.
func (t *Tree[T]) Dump(w io.Writer) {
	if t.root == nil {
		fmt.Fprintln(w, "empty")
		return
	}
	fmt.Fprintf(w, "root %v\n", t.root.value)
	t.root.dump(w)
}

func (n *Node[T]) dump(w io.Writer) {
	if n.left != nil {
		fmt.Fprintf(w, "%v -> %v (left)\n", n.value, n.left.value)
		n.left.dump(w)
	}
	if n.right != nil {
		fmt.Fprintf(w, "%v -> %v (right)\n", n.value, n.right.value)
		n.right.dump(w)
	}
}

// String renders the in-order contents of the tree.
func (t *Tree[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	it := t.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		if b.Len() > 1 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%v", it.Cur())
	}
	b.WriteString("]")
	return b.String()
}
