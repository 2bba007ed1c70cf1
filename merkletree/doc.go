// Package merkletree implements the Merkle Red-Black Tree (MRBT): a
// self-balancing binary search tree, keyed by signed integers, whose
// every node carries a pair of digests summarising its subtree.
//
// Data lives only in NIL leaves, which are additionally threaded into a
// doubly linked list in ascending key order. Every internal node holds a
// "shortcut" to the leaf carrying its key, and that leaf points back;
// insertion and deletion keep this pairing intact. The root's digest pair is the tree's
// public authenticator: an untrusted party may store the whole tree and
// still be held to a value it committed to, because any divergence
// changes the root digest (up to collisions in the underlying hash).
//
// The tree is not safe for concurrent use; callers needing that must
// serialise access themselves, for instance with a sync.RWMutex guarding
// the whole Tree.
package merkletree
