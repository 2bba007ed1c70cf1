package merkletree

// FromMap builds a fresh tree containing every key/value pair in m,
// inserting them one at a time. It corresponds to the original
// prototype's from_dict; offered here as a convenience constructor for
// bulk loading, e.g. from a snapshot.
func FromMap(m map[int64]interface{}, opts ...Option) *Tree {
	t := New(opts...)
	for k, v := range m {
		t.Insert(k, v)
	}
	return t
}

// Pair is one key/value entry for FromSortedIter.
type Pair struct {
	Key   int64
	Value interface{}
}

// FromSortedIter builds a fresh tree from pairs by inserting them one at
// a time in the given order (duplicates are rejected silently, keeping
// the first occurrence). The pairs need not be sorted: there is no
// separate fast path for sorted input.
func FromSortedIter(pairs []Pair, opts ...Option) *Tree {
	t := New(opts...)
	for _, p := range pairs {
		t.Insert(p.Key, p.Value)
	}
	return t
}
