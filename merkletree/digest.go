package merkletree

import "encoding/json"

// keyWidth is the fixed width, in bytes, of the big-endian signed
// encoding used in digest computation (§4.1). It is kept at 32 bytes so
// that digests stay comparable across implementations that use wider
// native key types, even though this package's native Key is int64
// (see the Open Questions note in SPEC_FULL.md).
const keyWidth = 32

// Digest is the (a, b) pair of byte strings stored at every node. For an
// internal node a and b are the hashes of the left and right child's own
// digest pairs; for a leaf they commit to the value and the key
// respectively.
type Digest struct {
	A []byte
	B []byte
}

// Equal reports whether two digest pairs are byte-for-byte identical.
func (d Digest) Equal(o Digest) bool {
	return bytesEqual(d.A, o.A) && bytesEqual(d.B, o.B)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Codec serialises stored values into the deterministic byte strings
// digests are computed over. New installs jsonCodec unless WithCodec is
// given, mirroring the original prototype's reliance on json.dumps.
type Codec interface {
	Serialize(value interface{}) ([]byte, error)
}

type jsonCodec struct{}

func (jsonCodec) Serialize(value interface{}) ([]byte, error) {
	return json.Marshal(value)
}

// encodeKey renders key as a fixed-width, big-endian, two's-complement
// signed integer, as required by §4.1's encode_key.
func encodeKey(key int64) []byte {
	out := make([]byte, keyWidth)
	if key < 0 {
		for i := range out {
			out[i] = 0xff
		}
	}
	u := uint64(key)
	for i := 0; i < 8; i++ {
		out[keyWidth-1-i] = byte(u >> (8 * uint(i)))
	}
	return out
}

// calcDigest computes calc_digest(n) per §4.1. It assumes n's children
// (if any) already carry up-to-date digests.
func (t *Tree) calcDigest(n *Node) Digest {
	switch {
	case n.isInternal():
		return Digest{
			A: t.hash(n.left.digest.A, n.left.digest.B),
			B: t.hash(n.right.digest.A, n.right.digest.B),
		}
	case n.isSentinel():
		noneBytes, err := t.codec.Serialize(nil)
		if err != nil {
			panic(err)
		}
		return Digest{
			A: t.hash(noneBytes, nil),
			B: t.hash(nil, nil),
		}
	default: // ordinary leaf
		valueBytes, err := t.codec.Serialize(n.value)
		if err != nil {
			// the codec contract (§6) requires Serialize to be total over
			// storable values; a failure here means the caller stored
			// something the codec cannot handle, which is a programmer
			// error (§7).
			panic(err)
		}
		return Digest{
			A: t.hash(valueBytes, nil),
			B: t.hash(encodeKey(n.key), nil),
		}
	}
}

func (t *Tree) hash(a, b []byte) []byte {
	return t.hashFunc(a, b)
}
