package kv

import (
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Storage is an associative structure for storing (string, string) pairs. It acts as a map but
// uses linear search instead, which proves to be more efficient on relatively low amount of
// entries, which often enough is the case. Unlike a map, the insertion order is preserved.
//
// Keys are stored exactly as they were passed. Exact-key operations (Set) treat "Host" and
// "host" as different keys, while lookups (Get, Value) are case-insensitive.
type Storage struct {
	pairs []Pair
}

func New() *Storage {
	return new(Storage)
}

// NewPrealloc returns an instance of Storage with pre-allocated underlying storage.
func NewPrealloc(n int) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
	}
}

// Add appends a new pair unconditionally.
func (s *Storage) Add(key, value string) *Storage {
	s.pairs = append(s.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return s
}

// Set overwrites the value of the pair with exactly the same key, keeping its position.
// If there's no such pair, a new one is appended.
func (s *Storage) Set(key, value string) *Storage {
	for i, pair := range s.pairs {
		if pair.Key == key {
			s.pairs[i].Value = value
			return s
		}
	}

	return s.Add(key, value)
}

// Value returns the value corresponding to the key. Otherwise, empty string is returned
func (s *Storage) Value(key string) string {
	value, _ := s.Get(key)
	return value
}

// Get returns a value and a bool, indicating whether the value was found. Keys are compared
// case-insensitively and the last matching pair wins.
func (s *Storage) Get(key string) (value string, found bool) {
	for i := len(s.pairs) - 1; i >= 0; i-- {
		if strcomp.EqualFold(key, s.pairs[i].Key) {
			return s.pairs[i].Value, true
		}
	}

	return "", false
}

// Folded returns a new storage with all the keys lower-cased. Keys colliding after folding
// are merged following Set semantics, so the last value wins. The original storage stays
// intact.
func (s *Storage) Folded() *Storage {
	folded := NewPrealloc(len(s.pairs))

	for _, pair := range s.pairs {
		folded.Set(strings.ToLower(pair.Key), pair.Value)
	}

	return folded
}

// Expose exposes the underlying pairs slice.
func (s *Storage) Expose() []Pair {
	return s.pairs
}
