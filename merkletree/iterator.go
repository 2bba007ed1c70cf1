package merkletree

// firstLeaf returns the tree's minimum-key leaf, or the sentinel if the
// tree is empty.
func (t *Tree) firstLeaf() *Node {
	n := t.root
	for n.isInternal() {
		n = n.left
	}
	return n
}

// Iterate calls fn for every stored key/value pair in ascending key
// order, using the doubly linked leaf list (§4.6). Iteration stops
// early if fn returns false.
func (t *Tree) Iterate(fn func(key int64, value interface{}) bool) {
	for n := t.firstLeaf(); n != nil && !n.isSentinel(); n = n.next {
		if !fn(n.key, n.value) {
			return
		}
	}
}

// Keys returns every stored key in ascending order.
func (t *Tree) Keys() []int64 {
	keys := make([]int64, 0, t.Size())
	t.Iterate(func(key int64, _ interface{}) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// KOrder returns the (0-indexed) i-th smallest key and its value, using
// subtree weights to descend directly rather than iterating (§4.6).
// Negative i counts from the end, so KOrder(-1) is the largest key.
func (t *Tree) KOrder(i int) (int64, interface{}, error) {
	if i < 0 {
		i += t.Size()
	}
	if i < 0 || i >= t.Size() {
		return 0, nil, ErrIndexOutOfRange
	}
	n := t.root
	for n.isInternal() {
		if i < n.left.weight {
			n = n.left
		} else {
			i -= n.left.weight
			n = n.right
		}
	}
	return n.key, n.value, nil
}
