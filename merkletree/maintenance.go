package merkletree

// sweep recomputes n's digest and then walks up to the root, refreshing
// weight and digest at every ancestor (§4.5). It is the single point
// through which every structural or value mutation restores the Merkle
// invariant before returning control to the caller.
func (t *Tree) sweep(n *Node) {
	n.digest = t.calcDigest(n)
	for p := n.parent; p != nil; p = p.parent {
		p.weight = p.left.weight + p.right.weight
		p.digest = t.calcDigest(p)
	}
}

// sweepFrom is like sweep but additionally refreshes n itself from its
// children's weights, for use after rotations where n is internal and
// its own weight may have changed.
func (t *Tree) sweepFrom(n *Node) {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.isInternal() {
			cur.weight = cur.left.weight + cur.right.weight
		}
		cur.digest = t.calcDigest(cur)
	}
}
