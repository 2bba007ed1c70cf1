package merkletree

import "testing"

func TestVerifyPresentKey(t *testing.T) {
	tr := New()
	for _, k := range []int64{1, 2, 3, 4, 5} {
		tr.Insert(k, k*100)
	}
	_, present, vo := tr.GetAuthenticated(3)
	if !present {
		t.Fatalf("key 3 reported absent")
	}
	if !Verify(tr.Digest(), vo, tr.hashFunc, tr.codec) {
		t.Fatalf("valid membership proof rejected")
	}
}

func TestVerifyAbsentKey(t *testing.T) {
	tr := New()
	for _, k := range []int64{1, 2, 3, 4, 5} {
		tr.Insert(k, k)
	}
	_, present, vo := tr.GetAuthenticated(42)
	if present {
		t.Fatalf("absent key reported present")
	}
	if !Verify(tr.Digest(), vo, tr.hashFunc, tr.codec) {
		t.Fatalf("valid non-membership proof rejected")
	}
}

func TestVerifyAbsentKeyEmptyTree(t *testing.T) {
	tr := New()
	_, present, vo := tr.GetAuthenticated(1)
	if present {
		t.Fatalf("key reported present in empty tree")
	}
	if !Verify(tr.Digest(), vo, tr.hashFunc, tr.codec) {
		t.Fatalf("non-membership proof against empty tree rejected")
	}
}

func TestVerifyRejectsTamperedProof(t *testing.T) {
	tr := New()
	for _, k := range []int64{1, 2, 3} {
		tr.Insert(k, k)
	}
	_, _, vo := tr.GetAuthenticated(2)
	vo.Value = 9999
	if Verify(tr.Digest(), vo, tr.hashFunc, tr.codec) {
		t.Fatalf("tampered proof value was accepted")
	}
}

func TestVerifyRejectsWrongRoot(t *testing.T) {
	tr := New()
	tr.Insert(1, 1)
	other := New()
	other.Insert(1, 2)
	_, _, vo := tr.GetAuthenticated(1)
	if Verify(other.Digest(), vo, tr.hashFunc, tr.codec) {
		t.Fatalf("proof verified against an unrelated root digest")
	}
}
