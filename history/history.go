// Package history wraps a sequence of Merkle Red-Black Tree root digests
// in a signed, hash-linked chain, generalizing CONIKS's per-epoch signed
// tree root to a per-Commit digest snapshot of an MRBT tree.
package history

import (
	"encoding/binary"
	"errors"

	"github.com/mrbt-go/mrbt/crypto/sign"
	"github.com/mrbt-go/mrbt/merkletree"
)

// ErrEmptyHistory is returned by operations that require at least one
// committed entry.
var ErrEmptyHistory = errors.New("[history] no entries committed yet")

// ErrBrokenChain is returned by Verify when an entry's signature is
// invalid or its hash-linkage to the previous entry does not match.
var ErrBrokenChain = errors.New("[history] signature or hash chain broken")

// Entry is a single signed snapshot of a tree's root digest.
type Entry struct {
	Index                 uint64
	Digest                merkletree.Digest
	PreviousSignatureHash []byte
	Signature             []byte
}

// History is an append-only, signed chain of tree digests. Each entry's
// signature covers its index, its digest and the hash of the previous
// entry's signature, so tampering with or reordering past entries makes
// Verify fail at the first altered entry.
type History struct {
	signer sign.PrivateKey
	public sign.PublicKey
	hash   merkletree.HashFunc
	// Package history does not otherwise depend on crypto/sha256 directly;
	// hash(sig, nil) is used only to chain each entry to the previous
	// entry's signature.
	entries []*Entry
}

// New constructs a History signed with signer, using hash to link
// signatures together. hash should ordinarily be the same HashFunc the
// tracked Tree itself uses, though this is not required.
func New(signer sign.PrivateKey, hash merkletree.HashFunc) (*History, error) {
	pub, ok := signer.Public()
	if !ok {
		return nil, sign.ErrorGetPubKey
	}
	return &History{signer: signer, public: pub, hash: hash}, nil
}

// PublicKey returns the public key entries can be verified against.
func (h *History) PublicKey() sign.PublicKey {
	return h.public
}

// Len reports the number of committed entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Latest returns the most recently committed entry.
func (h *History) Latest() (*Entry, error) {
	if len(h.entries) == 0 {
		return nil, ErrEmptyHistory
	}
	return h.entries[len(h.entries)-1], nil
}

// Commit signs digest as the next entry in the chain and appends it.
func (h *History) Commit(digest merkletree.Digest) *Entry {
	var prevSigHash []byte
	if n := len(h.entries); n > 0 {
		prevSigHash = h.hash(h.entries[n-1].Signature, nil)
	}
	e := &Entry{
		Index:                 uint64(len(h.entries)),
		Digest:                digest,
		PreviousSignatureHash: prevSigHash,
	}
	e.Signature = h.signer.Sign(signedBytes(e))
	h.entries = append(h.entries, e)
	return e
}

// Verify checks every entry's signature and the hash linkage between
// consecutive entries.
func (h *History) Verify() error {
	var prevSigHash []byte
	for i, e := range h.entries {
		if uint64(i) != e.Index {
			return ErrBrokenChain
		}
		if !bytesEqual(e.PreviousSignatureHash, prevSigHash) {
			return ErrBrokenChain
		}
		if !h.public.Verify(signedBytes(e), e.Signature) {
			return ErrBrokenChain
		}
		prevSigHash = h.hash(e.Signature, nil)
	}
	return nil
}

// signedBytes renders the fields an Entry's signature covers into a
// single deterministic byte string.
func signedBytes(e *Entry) []byte {
	var buf []byte
	var idx [8]byte
	binary.BigEndian.PutUint64(idx[:], e.Index)
	buf = append(buf, idx[:]...)
	buf = append(buf, e.Digest.A...)
	buf = append(buf, e.Digest.B...)
	buf = append(buf, e.PreviousSignatureHash...)
	return buf
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
