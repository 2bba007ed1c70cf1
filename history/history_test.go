package history

import (
	"testing"

	"github.com/mrbt-go/mrbt/crypto/sign"
	"github.com/mrbt-go/mrbt/merkletree"
)

func newTestHistory(t *testing.T) *History {
	sk, err := sign.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	h, err := New(sk, merkletree.NewHashFunc("sha256"))
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestCommitAndVerify(t *testing.T) {
	h := newTestHistory(t)
	tr := merkletree.New()
	for _, k := range []int64{1, 2, 3} {
		tr.Insert(k, k)
		h.Commit(tr.Digest())
	}
	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	if err := h.Verify(); err != nil {
		t.Fatalf("Verify() = %v, want nil", err)
	}
}

func TestLatestOnEmptyHistory(t *testing.T) {
	h := newTestHistory(t)
	if _, err := h.Latest(); err != ErrEmptyHistory {
		t.Fatalf("Latest() error = %v, want ErrEmptyHistory", err)
	}
}

func TestVerifyDetectsTamperedDigest(t *testing.T) {
	h := newTestHistory(t)
	tr := merkletree.New()
	tr.Insert(1, 1)
	h.Commit(tr.Digest())
	tr.Insert(2, 2)
	h.Commit(tr.Digest())

	h.entries[0].Digest = tr.Digest() // corrupt the first entry in place
	if err := h.Verify(); err != ErrBrokenChain {
		t.Fatalf("Verify() = %v, want ErrBrokenChain", err)
	}
}

func TestVerifyDetectsBrokenLinkage(t *testing.T) {
	h := newTestHistory(t)
	tr := merkletree.New()
	tr.Insert(1, 1)
	h.Commit(tr.Digest())
	tr.Insert(2, 2)
	h.Commit(tr.Digest())

	h.entries[1].PreviousSignatureHash = []byte("not the real hash")
	if err := h.Verify(); err != ErrBrokenChain {
		t.Fatalf("Verify() = %v, want ErrBrokenChain", err)
	}
}

func TestDifferentSignerFailsVerification(t *testing.T) {
	h := newTestHistory(t)
	tr := merkletree.New()
	tr.Insert(1, 1)
	e := h.Commit(tr.Digest())

	other := newTestHistory(t)
	if other.public.Verify(signedBytes(e), e.Signature) {
		t.Fatalf("signature verified under an unrelated public key")
	}
}
