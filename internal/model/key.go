package model

import (
	"slices"
)

// RejectReason explains why a call argument could not be used as a key.
type RejectReason string

const (
	// ReasonNonString marks an argument that is not a constant string.
	ReasonNonString RejectReason = "non-string-argument"
	// ReasonMissing marks a call without a key argument.
	ReasonMissing RejectReason = "missing-argument"
)

// ResolvedKey is the outcome of resolving a call site: either a literal key
// or a rejection carrying the raw argument text.
type ResolvedKey struct {
	key    string
	reason RejectReason
	source string
}

// Literal builds a resolved literal key.
func Literal(key string) ResolvedKey {
	return ResolvedKey{key: key}
}

// Rejected builds a rejected resolution.
func Rejected(reason RejectReason, source string) ResolvedKey {
	return ResolvedKey{reason: reason, source: source}
}

// Literal returns the key and true when the resolution is a literal.
func (r ResolvedKey) Literal() (string, bool) {
	return r.key, r.reason == ""
}

// IsRejected reports whether the resolution was rejected.
func (r ResolvedKey) IsRejected() bool {
	return r.reason != ""
}

// Reason returns the rejection reason, empty for literals.
func (r ResolvedKey) Reason() RejectReason {
	return r.reason
}

// Source returns the raw argument text of a rejected resolution.
func (r ResolvedKey) Source() string {
	return r.source
}

// KeySet is a deduplicated set of keys that remembers insertion order.
// The zero value is ready to use.
type KeySet struct {
	order []string
	index map[string]struct{}
}

// NewKeySet returns a set holding keys.
func NewKeySet(keys ...string) *KeySet {
	s := &KeySet{}
	for _, key := range keys {
		s.Add(key)
	}

	return s
}

// Add inserts key and reports whether it was new.
func (s *KeySet) Add(key string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}

	if _, ok := s.index[key]; ok {
		return false
	}

	s.index[key] = struct{}{}
	s.order = append(s.order, key)

	return true
}

// Has reports whether key is in the set.
func (s *KeySet) Has(key string) bool {
	if s == nil {
		return false
	}

	_, ok := s.index[key]

	return ok
}

// Len returns the number of keys.
func (s *KeySet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.order)
}

// Merge adds every key of other, keeping other's order for new keys.
func (s *KeySet) Merge(other *KeySet) {
	if other == nil {
		return
	}

	for _, key := range other.order {
		s.Add(key)
	}
}

// Keys returns the keys in insertion order, or lexicographically when sorted.
func (s *KeySet) Keys(sorted bool) []string {
	if s == nil {
		return []string{}
	}

	keys := slices.Clone(s.order)
	if keys == nil {
		keys = []string{}
	}

	if sorted {
		slices.Sort(keys)
	}

	return keys
}
