// Package xhash is the engine's single seam onto its 64-bit hash primitive.
// Everything else in this module calls Hash64 or HashString instead of
// importing a hash library directly, so the choice of primitive stays
// swappable in one place.
//
// xxh3 is used because it is fast on the short byte strings (1-30 bytes)
// that make up the hot path here, and because its avalanche is good enough
// to keep open addressing below the 0.75 load factor the tables are sized
// for.
package xhash

import "github.com/zeebo/xxh3"

// Hash64 returns the 64-bit hash of b.
//
// Hash64 is deterministic for a given process run but is not guaranteed to
// be stable across Go versions, architectures, or xxh3 releases; dictionary
// indexes built with one binary must not be assumed compatible with
// another.
func Hash64(b []byte) uint64 {
	return xxh3.Hash(b)
}

// HashString returns the 64-bit hash of s. It is equivalent to
// Hash64([]byte(s)) but avoids the conversion's allocation.
func HashString(s string) uint64 {
	return xxh3.HashString(s)
}
