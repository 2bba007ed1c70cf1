package merkletree

import (
	"fmt"
	"strings"
)

// Tree is a Merkle Red-Black Tree: a self-balancing BST whose root
// digest authenticates its entire key/value contents. The zero value is
// not usable; construct one with New.
type Tree struct {
	root     *Node
	hashFunc HashFunc
	codec    Codec
}

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithHash selects the named hash function (§6's Configuration Options
// table). Unknown names fall back to sha256.
func WithHash(name string) Option {
	return func(t *Tree) { t.hashFunc = NewHashFunc(name) }
}

// WithHashFunc installs a caller-supplied two-argument hash primitive,
// corresponding to the spec's hash = custom(fn) option.
func WithHashFunc(fn HashFunc) Option {
	return func(t *Tree) { t.hashFunc = fn }
}

// WithCodec installs a caller-supplied value codec. The default is a
// JSON codec, matching the original prototype's json.dumps.
func WithCodec(c Codec) Option {
	return func(t *Tree) { t.codec = c }
}

// New constructs an empty tree containing only the +∞ sentinel leaf.
func New(opts ...Option) *Tree {
	t := &Tree{
		hashFunc: NewHashFunc("sha256"),
		codec:    jsonCodec{},
	}
	for _, opt := range opts {
		opt(t)
	}
	t.root = newSentinelLeaf()
	t.root.digest = t.calcDigest(t.root)
	return t
}

// Size returns the number of keys stored, in O(1).
func (t *Tree) Size() int {
	return t.root.weight
}

// Digest returns the root digest pair, the tree's public authenticator.
func (t *Tree) Digest() Digest {
	return t.root.digest
}

// Equal reports whether t and other have equal root digests. Under
// collision resistance of the hash function this means they hold the
// same key/value pairs.
func (t *Tree) Equal(other *Tree) bool {
	return t.root.digest.Equal(other.root.digest)
}

// search descends from the root to the leaf at which key is, or would
// be, stored (§4.2): go left while key <= n.key, right otherwise. A
// separator's key is always its shortcut leaf's key (the maximum of its
// left subtree), so an internal node whose key exactly matches key
// still resolves to the correct leaf by continuing left rather than
// short-circuiting.
func (t *Tree) search(key int64) (*Node, bool) {
	n := t.root
	for n.isInternal() {
		if n.compareToKey(key) >= 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	if n.isSentinel() || n.key != key {
		return n, false
	}
	return n, true
}

// Contains reports whether key is present.
func (t *Tree) Contains(key int64) bool {
	_, found := t.search(key)
	return found
}

// Get returns the value stored under key and true, or false if key is
// absent.
func (t *Tree) Get(key int64) (interface{}, bool) {
	n, found := t.search(key)
	if !found {
		return nil, false
	}
	return n.value, true
}

// Set updates the value stored under key if key is present; it is a
// no-op if key is absent. Use Insert to add a new key. This package
// standardises "update only if present", per SPEC_FULL's design note on
// the set/upsert ambiguity.
func (t *Tree) Set(key int64, value interface{}) {
	n, found := t.search(key)
	if !found {
		return
	}
	n.value = value
	t.sweep(n)
}

// Upsert updates key's value if present, or inserts it otherwise. This
// is the indexed-assignment form mentioned in §6/§9.
func (t *Tree) Upsert(key int64, value interface{}) {
	if t.Contains(key) {
		t.Set(key, value)
		return
	}
	t.Insert(key, value)
}

// String renders the tree recursively, one line per node (including the
// sentinel), matching the original prototype's Node.__str__.
func (t *Tree) String() string {
	var b strings.Builder
	t.root.writeString(&b, "  ")
	return b.String()
}

func (n *Node) writeString(b *strings.Builder, indent string) {
	mark := "()"
	if n.isLeaf() {
		mark = "[]"
	}
	colorLetter := "N"
	switch n.color {
	case red:
		colorLetter = "R"
	case black:
		colorLetter = "B"
	}
	keyStr := "+inf"
	if !n.isInf {
		keyStr = fmt.Sprintf("%d", n.key)
	}
	fmt.Fprintf(b, "%s|%c%s%c %s\n", indent[:len(indent)-2], mark[0], colorLetter, mark[1], keyStr)
	if n.isInternal() {
		n.right.writeString(b, indent+" |")
		n.left.writeString(b, indent+"  ")
	}
}
