package dictionary

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats summarizes a loaded dictionary's size and health, returned by
// (*Engine).GetStats.
type Stats struct {
	// WordCount is the number of distinct words held in the exact-match
	// index.
	WordCount int

	// EntryCount is the number of distinct delete-variant keys held in the
	// delete index.
	EntryCount int

	// MalformedLines counts lines skipped during Load because they could
	// not be parsed as "term<TAB>count" (or the configured columns).
	MalformedLines int

	// DeleteIndexOverloaded is true once LoadFactor has crossed 0.75, a
	// sign the configured DeleteIndexSize is too small for this
	// dictionary's size and MaxEditDistance.
	DeleteIndexOverloaded bool

	// DeleteIndexLoadFactor is the delete index's Count()/Size().
	DeleteIndexLoadFactor float64

	// StringArenaUsed and StringArenaCap describe the arena backing
	// interned words, in bytes.
	StringArenaUsed int
	StringArenaCap  int

	// EntryArenaUsed and EntryArenaCap describe the arena backing
	// delete-index entry keys, in bytes.
	EntryArenaUsed int
	EntryArenaCap  int
}

// String renders Stats in a human-readable form, using humanize for byte
// counts so large dictionaries are reportable without mental long division.
func (s Stats) String() string {
	return fmt.Sprintf(
		"words=%d entries=%d malformed_lines=%d delete_index_load=%.2f%% (overloaded=%v) string_arena=%s/%s entry_arena=%s/%s",
		s.WordCount,
		s.EntryCount,
		s.MalformedLines,
		s.DeleteIndexLoadFactor*100,
		s.DeleteIndexOverloaded,
		humanize.Bytes(uint64(s.StringArenaUsed)),
		humanize.Bytes(uint64(s.StringArenaCap)),
		humanize.Bytes(uint64(s.EntryArenaUsed)),
		humanize.Bytes(uint64(s.EntryArenaCap)),
	)
}
