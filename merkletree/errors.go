package merkletree

import "errors"

var (
	// ErrInvalidTree is raised when a structural invariant the tree
	// relies on (two children per internal node, shortcut bijection,
	// leaf-list linkage) is found broken. It should never surface in
	// normal operation; seeing it means a bug in this package.
	ErrInvalidTree = errors.New("[merkletree] invalid tree")

	// ErrKeyNotFound denotes a key that is not present. The lookups in
	// this package (Get, Contains, GetAuthenticated) report absence with
	// a boolean and do not return it.
	ErrKeyNotFound = errors.New("[merkletree] key not found")

	// ErrIndexOutOfRange is returned by KOrder when the requested
	// order-statistic index has no corresponding key.
	ErrIndexOutOfRange = errors.New("[merkletree] order index out of range")
)
