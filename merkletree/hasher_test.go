package merkletree

import (
	"bytes"
	"testing"
)

func TestNewHashFuncKnownNames(t *testing.T) {
	for _, name := range HashNames() {
		h := NewHashFunc(name)
		out := h([]byte("a"), []byte("b"))
		if len(out) == 0 {
			t.Fatalf("hash %q produced empty output", name)
		}
		if !bytes.Equal(out, h([]byte("a"), []byte("b"))) {
			t.Fatalf("hash %q is not deterministic", name)
		}
	}
}

func TestNewHashFuncUnknownFallsBackToSHA256(t *testing.T) {
	unknown := NewHashFunc("not-a-real-hash")
	sha256 := NewHashFunc("sha256")
	if !bytes.Equal(unknown([]byte("x"), []byte("y")), sha256([]byte("x"), []byte("y"))) {
		t.Fatalf("unknown hash name did not fall back to sha256")
	}
}

func TestValidateHashName(t *testing.T) {
	if err := validateHashName("sha256"); err != nil {
		t.Fatalf("validateHashName(sha256): %v", err)
	}
	if err := validateHashName("bogus"); err == nil {
		t.Fatalf("validateHashName(bogus) should have failed")
	}
}
