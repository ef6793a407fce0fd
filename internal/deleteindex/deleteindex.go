// Package deleteindex implements the delete index: a flat, open-addressed
// table mapping each delete-variant string to the dictionary word(s) that
// produce it, plus their frequencies.
//
// Like the exact-match index, it is bounded-capacity and open-addressed
// rather than a Go map, so the slot probes of a lookup walk one contiguous
// array, the advantage linear probing has over chaining. Keys are interned
// in the entry arena; each new key's *Entry and its Words/Freqs slices are
// ordinary Go allocations.
package deleteindex

import (
	"bytes"
	"errors"

	"github.com/coregx/symspell/internal/arena"
)

// ErrFull is returned by Insert when no empty slot remains to probe into for
// a new delete-variant key.
var ErrFull = errors.New("deleteindex: table full")

// Entry is a delete-index entry: the delete-variant key plus the words (and
// their frequencies) that produce it. Key is arena-interned by Insert, and
// each element of Words is a slice borrowed from the string arena, never
// copied again after interning.
type Entry struct {
	Key   []byte
	Words [][]byte
	Freqs []uint64
}

// Table is a fixed-size open-addressed hash table of *Entry. The zero value
// is not usable; construct one with New.
type Table struct {
	slots []*Entry
	size  int
	count int // number of distinct keys (entries), not total words
}

// New creates a Table with size slots.
func New(size int) *Table {
	return &Table{slots: make([]*Entry, size), size: size}
}

func (t *Table) probe(h uint64) int {
	return int(h % uint64(t.size))
}

// Lookup returns the entry for the given (hash, key) pair, and whether it
// was found.
func (t *Table) Lookup(h uint64, key []byte) (*Entry, bool) {
	start := t.probe(h)
	for i := 0; i < t.size; i++ {
		idx := (start + i) % t.size
		e := t.slots[idx]
		if e == nil {
			return nil, false
		}
		if bytes.Equal(e.Key, key) {
			return e, true
		}
	}
	return nil, false
}

// Insert records that the arena-interned word produces the delete-variant
// key (hashed as h). key need not be arena-interned by the caller: Insert
// interns it itself, once, the first time this key is seen. word must
// already be an arena-interned (or otherwise permanently live) byte slice,
// since it is stored directly without copying.
//
// If key already has an entry, word is appended to it unless already
// present (dedup by linear scan), keeping the maximum frequency on a
// repeat. Returns ErrFull if the table has no empty slot to probe into for
// a brand new key.
func (t *Table) Insert(entryArena *arena.Arena, h uint64, key []byte, word []byte, freq uint64) error {
	start := t.probe(h)
	for i := 0; i < t.size; i++ {
		idx := (start + i) % t.size
		e := t.slots[idx]

		if e == nil {
			internedKey, err := entryArena.AllocCopy(key)
			if err != nil {
				return err
			}
			t.slots[idx] = &Entry{
				Key:   internedKey,
				Words: [][]byte{word},
				Freqs: []uint64{freq},
			}
			t.count++
			return nil
		}

		if bytes.Equal(e.Key, key) {
			for wi, w := range e.Words {
				if bytes.Equal(w, word) {
					if freq > e.Freqs[wi] {
						e.Freqs[wi] = freq
					}
					return nil
				}
			}
			// append already grows Words/Freqs geometrically; there is no
			// separate capacity field to manage by hand here.
			e.Words = append(e.Words, word)
			e.Freqs = append(e.Freqs, freq)
			return nil
		}
	}
	return ErrFull
}

// Count returns the number of distinct delete-variant keys stored.
func (t *Table) Count() int {
	return t.count
}

// Size returns the table's fixed slot capacity.
func (t *Table) Size() int {
	return t.size
}

// LoadFactor returns Count()/Size().
func (t *Table) LoadFactor() float64 {
	if t.size == 0 {
		return 0
	}
	return float64(t.count) / float64(t.size)
}
