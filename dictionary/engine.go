package dictionary

import (
	"github.com/coregx/symspell/internal/arena"
	"github.com/coregx/symspell/internal/deleteindex"
	"github.com/coregx/symspell/internal/exactindex"
)

// Engine is the assembled SymSpell dictionary: the exact-match index, the
// delete index, the two arenas backing their interned strings, and the
// bookkeeping Load and Finalize need.
//
// An Engine goes through two phases: loading (Load may be called any number
// of times to add words) and, after a single call to Finalize, a read-only
// phase in which Lookup and LookupSorted may be called concurrently from any
// number of goroutines. Calling Load after Finalize is not supported.
type Engine struct {
	cfg Config

	strings *arena.Arena
	entries *arena.Arena

	exact       *exactindex.Table
	deleteIdx   *deleteindex.Table
	maxFreq     uint64
	finalized   bool
	malformed   int
	scratch     *lookupScratchPool
	loadScratch *lookupScratch
}

// New constructs an Engine from cfg, returning a *Error with Kind
// ConfigErrorKind if cfg is invalid.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:       cfg,
		strings:   arena.New(cfg.StringArenaBytes),
		entries:   arena.New(cfg.EntryArenaBytes),
		exact:     exactindex.New(cfg.ExactTableSize, cfg.ConfirmExactMatches),
		deleteIdx: deleteindex.New(cfg.deleteIndexSize()),
		scratch:   newLookupScratchPool(cfg),
	}
	e.loadScratch = newLookupScratch(cfg)
	return e, nil
}

// GetStats returns a snapshot of the engine's current size and health.
func (e *Engine) GetStats() Stats {
	return Stats{
		WordCount:             e.exact.Count(),
		EntryCount:            e.deleteIdx.Count(),
		MalformedLines:        e.malformed,
		DeleteIndexOverloaded: e.deleteIdx.LoadFactor() > 0.75,
		DeleteIndexLoadFactor: e.deleteIdx.LoadFactor(),
		StringArenaUsed:       e.strings.Used(),
		StringArenaCap:        e.strings.Cap(),
		EntryArenaUsed:        e.entries.Used(),
		EntryArenaCap:         e.entries.Cap(),
	}
}

// Close releases any resources held by the engine. It always returns nil:
// an Engine owns only Go-managed memory (its arenas and tables), so there is
// nothing to fail to release. Exposed for symmetry with the root package's
// Dictionary and so callers can safely defer it.
func (e *Engine) Close() error {
	return nil
}
