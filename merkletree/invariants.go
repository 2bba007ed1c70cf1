package merkletree

import "fmt"

// CheckInvariants walks the whole tree and verifies every structural
// invariant from §3: red-black coloring, equal black-heights, subtree
// weights, digest correctness, BST ordering, leaf-list linkage and the
// shortcut bijection. It is grounded on the original prototype's
// exhaustive self-test and is intended for use in tests, not hot paths.
func (t *Tree) CheckInvariants() error {
	if t.root.isInternal() && t.root.isRed() {
		return fmt.Errorf("%w: root is red", ErrInvalidTree)
	}

	if _, err := t.checkNode(t.root); err != nil {
		return err
	}

	return t.checkLeafList()
}

// checkNode validates n and its subtree, returning its black-height.
func (t *Tree) checkNode(n *Node) (int, error) {
	if n.isLeaf() {
		wantWeight := 1
		if n.isSentinel() {
			wantWeight = 0
		}
		if n.weight != wantWeight {
			return 0, fmt.Errorf("%w: leaf %v has weight %d, want %d", ErrInvalidTree, n.key, n.weight, wantWeight)
		}
		if err := t.checkDigest(n); err != nil {
			return 0, err
		}
		return 1, nil
	}

	if n.isRed() {
		if isRedNode(n.left) || isRedNode(n.right) {
			return 0, fmt.Errorf("%w: red node %v has a red child", ErrInvalidTree, n.key)
		}
	}

	if n.left == nil || n.right == nil {
		return 0, fmt.Errorf("%w: internal node %v missing a child", ErrInvalidTree, n.key)
	}
	if n.left.parent != n || n.right.parent != n {
		return 0, fmt.Errorf("%w: node %v has a mislinked child", ErrInvalidTree, n.key)
	}

	bhLeft, err := t.checkNode(n.left)
	if err != nil {
		return 0, err
	}
	bhRight, err := t.checkNode(n.right)
	if err != nil {
		return 0, err
	}
	if bhLeft != bhRight {
		return 0, fmt.Errorf("%w: node %v has unequal black heights (%d vs %d)", ErrInvalidTree, n.key, bhLeft, bhRight)
	}

	wantWeight := n.left.weight + n.right.weight
	if n.weight != wantWeight {
		return 0, fmt.Errorf("%w: node %v has weight %d, want %d", ErrInvalidTree, n.key, n.weight, wantWeight)
	}

	if n.isInf {
		return 0, fmt.Errorf("%w: internal node %v is marked isInf", ErrInvalidTree, n.key)
	}
	if n.shortcut == nil || n.shortcut.isInternal() {
		return 0, fmt.Errorf("%w: node %v has no leaf shortcut", ErrInvalidTree, n.key)
	}
	if n.shortcut.isInf || n.shortcut.key != n.key {
		return 0, fmt.Errorf("%w: node %v's shortcut key mismatch", ErrInvalidTree, n.key)
	}
	if n.shortcut.shortcut != n {
		return 0, fmt.Errorf("%w: node %v's shortcut is not mutual", ErrInvalidTree, n.key)
	}

	if err := t.checkDigest(n); err != nil {
		return 0, err
	}

	bh := bhLeft
	if n.isBlack() {
		bh++
	}
	return bh, nil
}

func (t *Tree) checkDigest(n *Node) error {
	want := t.calcDigest(n)
	if !n.digest.Equal(want) {
		return fmt.Errorf("%w: node %v has a stale digest", ErrInvalidTree, n.key)
	}
	return nil
}

// checkLeafList verifies the doubly linked leaf list matches the tree's
// in-order leaf sequence exactly, ends at the +inf sentinel, and that
// the sentinel is the only leaf lacking a shortcut (invariant 6).
func (t *Tree) checkLeafList() error {
	structural := t.inorderLeaves()

	n := t.firstLeaf()
	var viaList []*Node
	for n != nil {
		viaList = append(viaList, n)
		if n.isSentinel() {
			break
		}
		n = n.next
	}

	if len(structural) != len(viaList) {
		return fmt.Errorf("%w: leaf list length mismatch", ErrInvalidTree)
	}
	for i := range structural {
		if structural[i] != viaList[i] {
			return fmt.Errorf("%w: leaf list order mismatch at position %d", ErrInvalidTree, i)
		}
		if i > 0 && !structural[i].isSentinel() {
			prev := structural[i-1]
			if !prev.isSentinel() && prev.key >= structural[i].key {
				return fmt.Errorf("%w: leaves out of order at position %d", ErrInvalidTree, i)
			}
		}
		if structural[i].isSentinel() {
			if structural[i].shortcut != nil {
				return fmt.Errorf("%w: sentinel has a shortcut", ErrInvalidTree)
			}
		} else if structural[i].shortcut == nil {
			return fmt.Errorf("%w: leaf %v has no shortcut", ErrInvalidTree, structural[i].key)
		}
	}
	if len(structural) > 0 && !structural[len(structural)-1].isSentinel() {
		return fmt.Errorf("%w: leaf list does not end at the sentinel", ErrInvalidTree)
	}
	return nil
}

func (t *Tree) inorderLeaves() []*Node {
	var leaves []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.isLeaf() {
			leaves = append(leaves, n)
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return leaves
}
