// Package exactindex implements the exact-match index: a flat,
// open-addressed table keyed by 64-bit word hash, storing frequency,
// probability, and inverse word frequency (IWF) in parallel arrays
// (struct-of-arrays, for cache-friendliness on the lookup fast path).
//
// The table is bounded-capacity and hash-keyed, signals "full" with a
// returned error rather than growing, and trades a map-backed cache's
// simplicity for an array-backed, linear-probed layout that keeps the
// lookup fast path's memory accesses contiguous.
package exactindex

import (
	"bytes"
	"errors"
)

// ErrFull is returned by Insert when the table has no empty slot left to
// probe into.
var ErrFull = errors.New("exactindex: table full")

// Table is a fixed-size open-addressed hash table. The zero value is not
// usable; construct one with New.
type Table struct {
	hashes  []uint64
	freqs   []uint64
	probs   []float32
	iwfs    []float32
	confirm [][]byte // nil unless confirmation byte-compare is enabled
	size    int
	count   int
}

// New creates a Table with size slots. withConfirm additionally stores each
// inserted word's own bytes, enabling Confirm to byte-compare away 64-bit
// hash collisions.
func New(size int, withConfirm bool) *Table {
	t := &Table{
		hashes: make([]uint64, size),
		freqs:  make([]uint64, size),
		probs:  make([]float32, size),
		iwfs:   make([]float32, size),
		size:   size,
	}
	if withConfirm {
		t.confirm = make([][]byte, size)
	}
	return t
}

// probe returns the starting slot index for hash h.
func (t *Table) probe(h uint64) int {
	return int(h % uint64(t.size))
}

// Lookup returns the slot index holding hash h, and whether it was found.
// A zero hash never matches: 0 is the sentinel marking a slot empty, so a
// word whose hash happens to be 0 can never be indexed.
func (t *Table) Lookup(h uint64) (int, bool) {
	if h == 0 {
		return 0, false
	}
	start := t.probe(h)
	for i := 0; i < t.size; i++ {
		idx := (start + i) % t.size
		if t.hashes[idx] == h {
			return idx, true
		}
		if t.hashes[idx] == 0 {
			return 0, false
		}
	}
	return 0, false
}

// Insert adds hash h with the given frequency and (optionally) its owning
// word's bytes for confirmation. If h is already present, its frequency is
// raised to the maximum of the stored and new values and the slot index is
// returned unchanged. Returns ErrFull if the table has no room to probe
// into for a new hash.
func (t *Table) Insert(h uint64, freq uint64, word []byte) (int, error) {
	if h == 0 {
		// Never index the sentinel hash; the word is simply not inserted.
		return 0, nil
	}

	start := t.probe(h)
	for i := 0; i < t.size; i++ {
		idx := (start + i) % t.size
		switch t.hashes[idx] {
		case h:
			if freq > t.freqs[idx] {
				t.freqs[idx] = freq
			}
			return idx, nil
		case 0:
			t.hashes[idx] = h
			t.freqs[idx] = freq
			if t.confirm != nil {
				t.confirm[idx] = word
			}
			t.count++
			return idx, nil
		}
	}
	return 0, ErrFull
}

// Get returns the frequency, probability, and IWF stored at idx.
func (t *Table) Get(idx int) (freq uint64, prob float32, iwf float32) {
	return t.freqs[idx], t.probs[idx], t.iwfs[idx]
}

// Confirm reports whether the word stored at idx byte-compares equal to
// word. It always returns true if the table was constructed without
// confirmation support (withConfirm=false in New), since there is nothing
// to compare against.
func (t *Table) Confirm(idx int, word []byte) bool {
	if t.confirm == nil {
		return true
	}
	return bytes.Equal(t.confirm[idx], word)
}

// SetDerived stores the probability and IWF computed for the word at idx.
func (t *Table) SetDerived(idx int, prob, iwf float32) {
	t.probs[idx] = prob
	t.iwfs[idx] = iwf
}

// Count returns the number of distinct hashes currently stored.
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

// ForEach calls f for every inhabited slot, in slot order.
func (t *Table) ForEach(f func(idx int, hash uint64, freq uint64)) {
	for idx, h := range t.hashes {
		if h != 0 {
			f(idx, h, t.freqs[idx])
		}
	}
}
