// Package symspell implements the SymSpell symmetric-delete spell
// correction algorithm: given a dictionary of words and their frequencies,
// it finds the most likely intended word for a misspelled query within a
// bounded edit distance, in time independent of dictionary size.
//
// A Dictionary is built once via Create or CreateWithConfig, loaded from
// one or more frequency-list sources with Load or LoadDictionary, sealed
// with Finalize, and from then on safe for concurrent Lookup and
// LookupSorted calls from any number of goroutines.
//
//	dict, err := symspell.Create(2, 7)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := dict.LoadDictionary("frequency_dictionary.txt", 0, 1); err != nil {
//		log.Fatal(err)
//	}
//	dict.Finalize()
//
//	out := make([]symspell.Suggestion, 1)
//	if n := dict.Lookup("helo", 2, out); n > 0 {
//		fmt.Println(out[0].Word) // "hello"
//	}
package symspell

import (
	"fmt"
	"io"
	"os"

	"github.com/coregx/symspell/dictionary"
)

// Suggestion is one candidate correction returned by Lookup or
// LookupSorted.
type Suggestion = dictionary.Suggestion

// Config controls dictionary construction. See dictionary.Config for field
// documentation.
type Config = dictionary.Config

// Stats summarizes a dictionary's size and health, returned by GetStats.
type Stats = dictionary.Stats

// ErrorKind classifies an Error.
type ErrorKind = dictionary.ErrorKind

// Error represents a failure at the create or load boundary.
type Error = dictionary.Error

const (
	// ConfigErrorKind marks an invalid Config, reported by Create,
	// CreateWithConfig, and MustCreate.
	ConfigErrorKind = dictionary.ConfigErrorKind
	// IOErrorKind marks a dictionary file or reader that could not be
	// read, reported by Load and LoadDictionary.
	IOErrorKind = dictionary.IOErrorKind
	// ResourceExhaustedKind marks an arena or table that ran out of
	// capacity during loading.
	ResourceExhaustedKind = dictionary.ResourceExhaustedKind
	// MalformedInputKind advisory-labels the per-line parse failures
	// Stats.MalformedLines counts; Load does not fail on them and never
	// returns an *Error with this Kind.
	MalformedInputKind = dictionary.MalformedInputKind
)

// MaxTermLen is the hard cap, in bytes, on word and query length; longer
// inputs are clipped rather than rejected.
const MaxTermLen = dictionary.MaxTermLen

// DefaultConfig returns a Config with the recommended defaults: max edit
// distance 2, prefix length 7, 128 MiB arenas, and collision confirmation
// disabled.
func DefaultConfig() Config {
	return dictionary.DefaultConfig()
}

// Dictionary is a loaded, queryable SymSpell dictionary.
type Dictionary struct {
	engine *dictionary.Engine
}

// Create builds an empty Dictionary with the given max edit distance (1..3)
// and prefix length, and DefaultConfig's values for everything else.
func Create(maxEditDistance, prefixLength int) (*Dictionary, error) {
	cfg := DefaultConfig()
	cfg.MaxEditDistance = maxEditDistance
	cfg.PrefixLength = prefixLength
	return CreateWithConfig(cfg)
}

// CreateWithConfig builds an empty Dictionary from a fully specified
// Config, returning an *Error with Kind ConfigErrorKind if cfg is invalid.
func CreateWithConfig(cfg Config) (*Dictionary, error) {
	e, err := dictionary.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Dictionary{engine: e}, nil
}

// MustCreate is like Create but panics on error. Intended for
// initialization code (package-level vars, test setup) where a bad
// Config is a programming error, not a runtime condition to handle.
func MustCreate(maxEditDistance, prefixLength int) *Dictionary {
	d, err := Create(maxEditDistance, prefixLength)
	if err != nil {
		panic(err)
	}
	return d
}

// Load streams a frequency dictionary from r, one entry per line; see
// dictionary.Engine.Load for the line format termCol and countCol select.
func (d *Dictionary) Load(r io.Reader, termCol, countCol int) error {
	return d.engine.Load(r, termCol, countCol)
}

// LoadDictionary opens path and Loads it, wrapping any open error as an
// *Error with Kind IOErrorKind.
func (d *Dictionary) LoadDictionary(path string, termCol, countCol int) error {
	f, err := os.Open(path)
	if err != nil {
		return &Error{Kind: IOErrorKind, Message: fmt.Sprintf("opening %s", path), Cause: err}
	}
	defer f.Close()
	return d.Load(f, termCol, countCol)
}

// Finalize computes every loaded word's probability and inverse word
// frequency. It must be called exactly once, after the last Load call and
// before any Lookup or LookupSorted call.
func (d *Dictionary) Finalize() {
	d.engine.Finalize()
}

// Lookup finds the single best correction for term within maxDistance
// edits. See dictionary.Engine.Lookup for the full contract.
func (d *Dictionary) Lookup(term string, maxDistance int, out []Suggestion) int {
	return d.engine.Lookup(term, maxDistance, out)
}

// LookupSorted is like Lookup but fills as many of out's slots as there are
// candidates, sorted best-first.
func (d *Dictionary) LookupSorted(term string, maxDistance int, out []Suggestion) int {
	return d.engine.LookupSorted(term, maxDistance, out)
}

// GetStats returns a snapshot of the dictionary's current size and health.
func (d *Dictionary) GetStats() Stats {
	return d.engine.GetStats()
}

// GetProbability returns the probability computed for word at Finalize
// time, and whether word is present in the dictionary at all.
func (d *Dictionary) GetProbability(word string) (float32, bool) {
	return d.engine.GetProbability(word)
}

// GetIWF returns the inverse word frequency computed for word at Finalize
// time, and whether word is present in the dictionary.
func (d *Dictionary) GetIWF(word string) (float32, bool) {
	return d.engine.GetIWF(word)
}

// Close releases resources held by the dictionary. It always returns nil;
// exposed so callers can safely defer it.
func (d *Dictionary) Close() error {
	return d.engine.Close()
}
