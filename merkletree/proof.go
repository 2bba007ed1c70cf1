package merkletree

// PathStep is one level of a verification object: the digest of the
// node not on the proven path (the sibling) together with which side
// the proven node occupied.
type PathStep struct {
	Sibling    Digest
	ProvenLeft bool
}

// VerificationObject lets a party holding only a trusted root digest
// check a single key's membership (or non-membership) without holding
// the rest of the tree (§4.7). For a non-membership proof the witness
// fields describe whichever leaf search would actually terminate on
// (the +inf sentinel, or a real leaf with a different key straddling
// where the queried key would sit).
type VerificationObject struct {
	Key     int64
	Present bool
	Value   interface{}

	WitnessIsSentinel bool
	WitnessKey        int64
	WitnessValue      interface{}

	Path []PathStep // leaf-to-root order
}

// GetAuthenticated returns the value stored under key, whether it was
// present, and a VerificationObject proving that answer against the
// tree's current root digest.
func (t *Tree) GetAuthenticated(key int64) (interface{}, bool, VerificationObject) {
	vo := VerificationObject{Key: key}

	n := t.root
	var path []PathStep
	for n.isInternal() {
		if n.compareToKey(key) >= 0 {
			path = append(path, PathStep{Sibling: n.right.digest, ProvenLeft: true})
			n = n.left
		} else {
			path = append(path, PathStep{Sibling: n.left.digest, ProvenLeft: false})
			n = n.right
		}
	}

	vo.Present = !n.isSentinel() && n.key == key
	vo.Path = path
	if vo.Present {
		vo.Value = n.value
	} else {
		vo.WitnessIsSentinel = n.isSentinel()
		if !vo.WitnessIsSentinel {
			vo.WitnessKey = n.key
			vo.WitnessValue = n.value
		}
	}
	return vo.Value, vo.Present, vo
}

// Verify checks vo against trustedDigest using hashFunc and codec, which
// must match the ones the tree that produced vo was configured with.
// For a present key it returns true only if vo's (key, value) leaf
// hashes up vo.Path to trustedDigest. For an absent key it checks only
// that the witness leaf hashes up vo.Path to trustedDigest; vo.Key is not
// used, so it does not check that the witness is the leaf a search for
// vo.Key ends at.
func Verify(trustedDigest Digest, vo VerificationObject, hashFunc HashFunc, codec Codec) bool {
	leafKey := vo.Key
	leafValue := vo.Value
	isSentinel := false
	if !vo.Present {
		isSentinel = vo.WitnessIsSentinel
		leafKey = vo.WitnessKey
		leafValue = vo.WitnessValue
	}

	var cur Digest
	if isSentinel {
		noneBytes, err := codec.Serialize(nil)
		if err != nil {
			return false
		}
		cur = Digest{A: hashFunc(noneBytes, nil), B: hashFunc(nil, nil)}
	} else {
		valueBytes, err := codec.Serialize(leafValue)
		if err != nil {
			return false
		}
		cur = Digest{
			A: hashFunc(valueBytes, nil),
			B: hashFunc(encodeKey(leafKey), nil),
		}
	}

	for i := len(vo.Path) - 1; i >= 0; i-- {
		step := vo.Path[i]
		if step.ProvenLeft {
			cur = Digest{
				A: hashFunc(cur.A, cur.B),
				B: hashFunc(step.Sibling.A, step.Sibling.B),
			}
		} else {
			cur = Digest{
				A: hashFunc(step.Sibling.A, step.Sibling.B),
				B: hashFunc(cur.A, cur.B),
			}
		}
	}

	return cur.Equal(trustedDigest)
}
