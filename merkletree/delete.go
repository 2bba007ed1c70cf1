package merkletree

// Delete removes key from the tree. It is a no-op if key is absent.
//
// Grounded on the original prototype's delete/_delete_fix (§4.4):
// deleting a leaf L always removes its immediate parent P as well,
// promoting L's sibling into P's old slot; if P was black this creates
// a "double black" at the sibling that red-black delete-fixup resolves
// through the usual six cases.
func (t *Tree) Delete(key int64) {
	leaf, found := t.search(key)
	if !found {
		return
	}

	p := leaf.parent
	g := p.parent
	leafWasRightChild := leaf.isRightChild()
	var sib *Node
	if leafWasRightChild {
		sib = p.left
	} else {
		sib = p.right
	}

	sib.parent = g
	if g == nil {
		t.root = sib
	} else if p.isLeftChild() {
		g.left = sib
	} else {
		g.right = sib
	}

	unlinkLeaf(leaf)

	// A separator's key and shortcut pair directly with its own left
	// child whenever that child is a bare leaf, exactly as insertion
	// sets them up (§4.3 step 2). Deleting a left-child leaf removes p,
	// its own direct shortcut partner, together with it: no repair
	// needed. Deleting a right-child leaf instead orphans the ancestor
	// M whose key equals leaf's key (M != p, since p's own key is the
	// max of its left subtree, which does not contain leaf); M must
	// inherit p's key and shortcut target in p's place (§4.4 step 6).
	if leafWasRightChild {
		t.absorbOrphanedSeparator(p, leaf.key)
	}

	if p.isBlack() {
		t.deleteFix(sib, g)
	}
	t.sweep(sib)
}

// absorbOrphanedSeparator repairs the shortcut bijection after p (whose
// deleted child held deletedKey) is spliced out of the tree. It walks
// up from p to the ancestor M still carrying deletedKey as its
// separator key, and repoints M at p's own key and shortcut target,
// since p's slot in the bijection is now free.
func (t *Tree) absorbOrphanedSeparator(p *Node, deletedKey int64) {
	m := p.parent
	for m != nil && (m.isInf || m.key != deletedKey) {
		m = m.parent
	}
	if m == nil {
		// deletedKey had no ancestor holding it as a separator key,
		// meaning p.shortcut's former pairing was already direct at p;
		// nothing further to repair.
		return
	}
	m.key = p.key
	m.shortcut = p.shortcut
	p.shortcut.shortcut = m
}

// unlinkLeaf splices leaf out of the doubly linked leaf list.
func unlinkLeaf(leaf *Node) {
	if leaf.prev != nil {
		leaf.prev.next = leaf.next
	}
	if leaf.next != nil {
		leaf.next.prev = leaf.prev
	}
}

func isBlackNode(n *Node) bool { return n == nil || n.isBlack() }
func isRedNode(n *Node) bool   { return n != nil && n.isRed() }

// deleteFix resolves the double-black introduced at x (x.parent == xp)
// by the removal of a black separator, per the six cases of §4.4.
func (t *Tree) deleteFix(x, xp *Node) {
	for x != t.root && isBlackNode(x) {
		if xp == nil {
			break
		}
		if x == xp.left {
			w := xp.right
			if isRedNode(w) {
				w.color = black
				xp.color = red
				t.rotateUp(w)
				w = xp.right
			}
			if isBlackNode(w.left) && isBlackNode(w.right) {
				w.color = red
				x = xp
				xp = x.parent
				continue
			}
			if isBlackNode(w.right) {
				w.left.color = black
				w.color = red
				t.rotateUp(w.left)
				w = xp.right
			}
			w.color = xp.color
			xp.color = black
			w.right.color = black
			t.rotateUp(w)
			x = t.root
			xp = nil
		} else {
			w := xp.left
			if isRedNode(w) {
				w.color = black
				xp.color = red
				t.rotateUp(w)
				w = xp.left
			}
			if isBlackNode(w.left) && isBlackNode(w.right) {
				w.color = red
				x = xp
				xp = x.parent
				continue
			}
			if isBlackNode(w.left) {
				w.right.color = black
				w.color = red
				t.rotateUp(w.right)
				w = xp.left
			}
			w.color = xp.color
			xp.color = black
			w.left.color = black
			t.rotateUp(w)
			x = t.root
			xp = nil
		}
	}
	// x may still be the original bare leaf here (a leaf promoted straight
	// to the root); leaves are always conventionally black already and
	// must keep their nilColor marker, so only internal nodes are forced.
	if x != nil && x.isInternal() {
		x.color = black
	}
}
