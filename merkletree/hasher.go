package merkletree

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// HashFunc is the two-argument hash primitive H required by §4.1 of the
// specification: it must be deterministic, collision-resistant and
// produce a fixed-width output.
type HashFunc func(a, b []byte) []byte

// hasherFunc constructs a fresh hash.Hash for one of the named digests.
type hasherFunc func() hash.Hash

var namedHashers = map[string]hasherFunc{
	"sha1":     sha1.New,
	"sha224":   sha256.New224,
	"sha256":   sha256.New,
	"sha384":   sha512.New384,
	"sha512":   sha512.New,
	"sha3-256": sha3.New256,
	"sha3-512": sha3.New512,
	"blake2b":  func() hash.Hash { h, _ := blake2b.New256(nil); return h },
	"blake2s":  func() hash.Hash { h, _ := blake2s.New256(nil); return h },
	"blake3":   func() hash.Hash { return blake3.New() },
}

// NewHashFunc returns the HashFunc identified by name. Unknown names fall
// back to sha256, matching the original prototype's behaviour.
func NewHashFunc(name string) HashFunc {
	ctor, ok := namedHashers[name]
	if !ok {
		ctor = namedHashers["sha256"]
	}
	return func(a, b []byte) []byte {
		h := ctor()
		h.Write(a)
		h.Write(b)
		return h.Sum(nil)
	}
}

// HashNames lists the recognised hash option names, in the order the
// specification lists them.
func HashNames() []string {
	return []string{"sha256", "sha1", "sha224", "sha384", "sha512", "sha3-256", "sha3-512", "blake2b", "blake2s", "blake3"}
}

func validateHashName(name string) error {
	if _, ok := namedHashers[name]; !ok {
		return fmt.Errorf("[merkletree] unknown hash %q", name)
	}
	return nil
}
