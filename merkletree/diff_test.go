package merkletree

import "testing"

func changesByKey(cs []Change) map[int64]Change {
	m := make(map[int64]Change, len(cs))
	for _, c := range cs {
		m[c.Key] = c
	}
	return m
}

func TestChangeSetDetectsAddRemoveModify(t *testing.T) {
	a := New()
	b := New()
	for _, k := range []int64{1, 2, 3, 4} {
		a.Insert(k, k)
		b.Insert(k, k)
	}
	a.Delete(2)       // now only in b: added going from a to b
	b.Insert(5, 50)   // added
	b.Set(3, 300)     // modified

	changes := a.ChangeSet(b)
	byKey := changesByKey(changes)

	if c, ok := byKey[2]; !ok || c.Kind != Added {
		t.Fatalf("expected key 2 added going from a to b, got %+v (ok=%v)", c, ok)
	}
	if c, ok := byKey[5]; !ok || c.Kind != Added {
		t.Fatalf("expected key 5 added, got %+v (ok=%v)", c, ok)
	}
	if c, ok := byKey[3]; !ok || c.Kind != Modified || c.NewValue != 300 {
		t.Fatalf("expected key 3 modified to 300, got %+v (ok=%v)", c, ok)
	}
	if _, ok := byKey[1]; ok {
		t.Fatalf("unchanged key 1 should not appear in change set")
	}
	if _, ok := byKey[4]; ok {
		t.Fatalf("unchanged key 4 should not appear in change set")
	}
}

func TestChangeSetIdenticalTreesIsEmpty(t *testing.T) {
	a := New()
	b := New()
	for _, k := range []int64{10, 20, 30} {
		a.Insert(k, k)
		b.Insert(k, k)
	}
	if cs := a.ChangeSet(b); len(cs) != 0 {
		t.Fatalf("expected no changes between identical trees, got %+v", cs)
	}
}

func TestChangeSetAgreesWithLegacyMerge(t *testing.T) {
	a := New()
	b := New()
	for _, k := range []int64{1, 2, 3, 4, 5, 6, 7, 8} {
		a.Insert(k, k)
	}
	for _, k := range []int64{2, 3, 4, 6, 7, 9, 10} {
		b.Insert(k, k*2)
	}

	fast := changesByKey(a.ChangeSet(b))
	legacy := changesByKey(a.ChangeSetMerge(b))

	if len(fast) != len(legacy) {
		t.Fatalf("ChangeSet produced %d entries, ChangeSetMerge produced %d", len(fast), len(legacy))
	}
	for k, c := range legacy {
		fc, ok := fast[k]
		if !ok {
			t.Fatalf("ChangeSet missing key %d found by ChangeSetMerge", k)
		}
		if fc.Kind != c.Kind {
			t.Fatalf("key %d: ChangeSet kind %v, ChangeSetMerge kind %v", k, fc.Kind, c.Kind)
		}
	}
}

func TestChangeSetAgainstEmptyTree(t *testing.T) {
	a := New()
	for _, k := range []int64{1, 2, 3} {
		a.Insert(k, k)
	}
	b := New()

	changes := a.ChangeSet(b)
	if len(changes) != 3 {
		t.Fatalf("diffing against empty tree produced %d changes, want 3", len(changes))
	}
	for _, c := range changes {
		if c.Kind != Removed {
			t.Fatalf("expected all changes to be removals, got %v", c.Kind)
		}
	}
}
