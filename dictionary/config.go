package dictionary

// MaxTermLen is the hard cap on word and query length in bytes. Longer
// inputs are clipped, not rejected.
const MaxTermLen = 128

const (
	defaultStringArenaBytes = 128 << 20
	defaultEntryArenaBytes  = 128 << 20
	defaultMaxDeleteQueue   = 10000
	defaultExactTableSize   = 524287
)

// deleteIndexSizeByDistance gives a recommended prime table size per
// configured max edit distance, sized so the table stays well under a
// 0.75 load factor for a dictionary of several hundred thousand words.
var deleteIndexSizeByDistance = map[int]int{
	1: 524287,
	2: 4194301,
	3: 33554393,
}

// Config controls dictionary construction: table and arena sizing, the two
// SymSpell parameters (D, P), and a handful of behavior toggles.
//
// Example:
//
//	cfg := dictionary.DefaultConfig()
//	cfg.MaxEditDistance = 2
//	cfg.PrefixLength = 7
//	engine, err := dictionary.New(cfg)
type Config struct {
	// MaxEditDistance is the maximum pre-computed edit distance D, one of
	// 1, 2, or 3.
	MaxEditDistance int

	// PrefixLength is the prefix length P considered for delete-variant
	// enumeration. 7 is a well-tested default.
	PrefixLength int

	// StringArenaBytes is the fixed capacity of the string arena. Default:
	// 128 MiB.
	StringArenaBytes int

	// EntryArenaBytes is the fixed capacity of the delete-index entry
	// arena. Default: 128 MiB.
	EntryArenaBytes int

	// ExactTableSize is the slot count for the exact-match table. Default:
	// 524287, which holds roughly 250K words at a 50% load factor.
	ExactTableSize int

	// DeleteIndexSize is the slot count for the delete index. If zero, it
	// is derived from MaxEditDistance via deleteIndexSizeByDistance.
	DeleteIndexSize int

	// MaxDeleteQueue bounds delete-enumeration work per call. Default:
	// 10000.
	MaxDeleteQueue int

	// SortedSuggestions gates LookupSorted's multi-candidate behavior. When
	// true, LookupSorted returns up to len(out) candidates ordered by
	// (distance asc, frequency desc, term asc). When false, LookupSorted
	// falls back to returning just the single best candidate, the same as
	// Lookup. Lookup itself always returns the single best candidate
	// regardless of this setting.
	SortedSuggestions bool

	// ConfirmExactMatches, when true, stores each word's own bytes
	// alongside its exact-match slot and byte-compares on a hash hit
	// before accepting it, eliminating the (already vanishingly rare)
	// possibility of a silent 64-bit hash collision. Default: false,
	// treating such collisions as harmless.
	ConfirmExactMatches bool

	// RequirePrimeTableSize, when true (the default), requires
	// ExactTableSize and a non-zero DeleteIndexSize to be prime, which
	// keeps probe sequences from cycling through only a subset of slots.
	RequirePrimeTableSize bool
}

// DefaultConfig returns a Config with recommended defaults: D=2, P=7,
// 128 MiB arenas, the D=2 delete-index size, sorted suggestions enabled, and
// confirmation disabled.
func DefaultConfig() Config {
	return Config{
		MaxEditDistance:       2,
		PrefixLength:          7,
		StringArenaBytes:      defaultStringArenaBytes,
		EntryArenaBytes:       defaultEntryArenaBytes,
		ExactTableSize:        defaultExactTableSize,
		DeleteIndexSize:       0,
		MaxDeleteQueue:        defaultMaxDeleteQueue,
		SortedSuggestions:     true,
		ConfirmExactMatches:   false,
		RequirePrimeTableSize: true,
	}
}

// deleteIndexSize returns the effective delete-index table size: the
// explicit DeleteIndexSize if set, otherwise the default for
// MaxEditDistance.
func (c Config) deleteIndexSize() int {
	if c.DeleteIndexSize > 0 {
		return c.DeleteIndexSize
	}
	return deleteIndexSizeByDistance[c.MaxEditDistance]
}

// Validate checks whether c is usable, returning a *Error with Kind
// ConfigErrorKind describing the first problem found.
func (c Config) Validate() error {
	if c.MaxEditDistance < 1 || c.MaxEditDistance > 3 {
		return &Error{Kind: ConfigErrorKind, Message: "MaxEditDistance must be 1, 2, or 3"}
	}
	if c.PrefixLength <= 0 || c.PrefixLength > MaxTermLen {
		return &Error{Kind: ConfigErrorKind, Message: "PrefixLength must be between 1 and MaxTermLen"}
	}
	if c.StringArenaBytes <= 0 {
		return &Error{Kind: ConfigErrorKind, Message: "StringArenaBytes must be positive"}
	}
	if c.EntryArenaBytes <= 0 {
		return &Error{Kind: ConfigErrorKind, Message: "EntryArenaBytes must be positive"}
	}
	if c.ExactTableSize <= 0 {
		return &Error{Kind: ConfigErrorKind, Message: "ExactTableSize must be positive"}
	}
	if c.MaxDeleteQueue <= 0 {
		return &Error{Kind: ConfigErrorKind, Message: "MaxDeleteQueue must be positive"}
	}
	if size := c.deleteIndexSize(); size <= 0 {
		return &Error{Kind: ConfigErrorKind, Message: "DeleteIndexSize must be positive"}
	}

	if c.RequirePrimeTableSize {
		if !isPrime(c.ExactTableSize) {
			return &Error{Kind: ConfigErrorKind, Message: "ExactTableSize must be prime"}
		}
		if !isPrime(c.deleteIndexSize()) {
			return &Error{Kind: ConfigErrorKind, Message: "DeleteIndexSize must be prime"}
		}
	}

	return nil
}

// isPrime is a plain trial-division primality test, adequate for the
// thousands-to-tens-of-millions table sizes this package validates (not
// intended for cryptographic use).
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
