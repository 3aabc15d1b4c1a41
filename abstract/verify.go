package abstract

import "fmt"

// Verify checks the structural invariants of the tree: strict ordering over
// every subtree, parent back-references, the stored length, and the height
// recurrence. It is intended for tests; operations do not defend against a
// broken structure at runtime.
func (t *Tree[T]) Verify() error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("root %v has a parent", t.root.value)
	}
	count, err := t.verifyNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.length {
		return fmt.Errorf("length is %d but %d nodes are reachable from the root", t.length, count)
	}
	return nil
}

func (t *Tree[T]) verifyNode(n *Node[T], lo, hi *T) (count int, err error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && t.cmp(n.value, *lo) <= 0 {
		return 0, fmt.Errorf("node %v violates ordering: not above %v", n.value, *lo)
	}
	if hi != nil && t.cmp(n.value, *hi) >= 0 {
		return 0, fmt.Errorf("node %v violates ordering: not below %v", n.value, *hi)
	}
	if n.left != nil && n.left.parent != n {
		return 0, fmt.Errorf("node %v: left child %v has a stale parent", n.value, n.left.value)
	}
	if n.right != nil && n.right.parent != n {
		return 0, fmt.Errorf("node %v: right child %v has a stale parent", n.value, n.right.value)
	}
	if h := 1 + max(n.left.Height(), n.right.Height()); h != n.height {
		return 0, fmt.Errorf("node %v has height %d, expected %d", n.value, n.height, h)
	}
	lc, err := t.verifyNode(n.left, lo, &n.value)
	if err != nil {
		return 0, err
	}
	rc, err := t.verifyNode(n.right, &n.value, hi)
	if err != nil {
		return 0, err
	}
	return lc + rc + 1, nil
}
