package deletes

import (
	"sort"
	"testing"
)

func variantStrings(s *Set) []string {
	out := make([]string, len(s.Variants()))
	for i, v := range s.Variants() {
		out[i] = string(v)
	}
	sort.Strings(out)
	return out
}

func TestEnumerateSingleDeletion(t *testing.T) {
	cfg := Config{D: 1, P: 7, MaxQueue: 100}
	out := NewSet(cfg)
	Enumerate([]byte("word"), cfg, out)

	want := []string{"word", "ord", "wrd", "wod", "wor"}
	sort.Strings(want)
	got := variantStrings(out)
	if !equalStringSlices(got, want) {
		t.Fatalf("Enumerate(word, D=1) = %v, want %v", got, want)
	}
}

func TestEnumerateDepthTwo(t *testing.T) {
	cfg := Config{D: 2, P: 7, MaxQueue: 1000}
	out := NewSet(cfg)
	Enumerate([]byte("abc"), cfg, out)

	want := []string{"abc", "bc", "ac", "ab", "c", "b", "a"}
	sort.Strings(want)
	got := variantStrings(out)
	if !equalStringSlices(got, want) {
		t.Fatalf("Enumerate(abc, D=2) = %v, want %v", got, want)
	}
}

func TestEnumerateEmptyStringOnlyWhenPrefixShort(t *testing.T) {
	cfg := Config{D: 2, P: 1, MaxQueue: 100}
	out := NewSet(cfg)
	Enumerate([]byte("hello"), cfg, out)

	found := false
	for _, v := range out.Variants() {
		if len(v) == 0 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected empty string variant when P <= D")
	}
}

func TestEnumerateNoEmptyStringWhenPrefixLong(t *testing.T) {
	cfg := Config{D: 1, P: 7, MaxQueue: 100}
	out := NewSet(cfg)
	Enumerate([]byte("hello"), cfg, out)

	for _, v := range out.Variants() {
		if len(v) == 0 {
			t.Fatal("unexpected empty string variant when P > D")
		}
	}
}

func TestEnumeratePrefixTruncatesBeforeDeletion(t *testing.T) {
	// With P=3, only "abc" of "abcdef" should ever be a deletion source:
	// deleting from the untruncated word would produce variants containing
	// 'd', 'e', or 'f', which must never appear.
	cfg := Config{D: 1, P: 3, MaxQueue: 100}
	out := NewSet(cfg)
	Enumerate([]byte("abcdef"), cfg, out)

	for _, v := range out.Variants() {
		for _, c := range v {
			if c == 'd' || c == 'e' || c == 'f' {
				t.Fatalf("variant %q contains a byte beyond the prefix; truncation must precede deletion", v)
			}
		}
	}
}

func TestEnumerateDeduplicates(t *testing.T) {
	// "aab" deleting either 'a' yields "ab" via two different paths; it must
	// appear only once.
	cfg := Config{D: 1, P: 7, MaxQueue: 100}
	out := NewSet(cfg)
	Enumerate([]byte("aab"), cfg, out)

	counts := map[string]int{}
	for _, v := range out.Variants() {
		counts[string(v)]++
	}
	for variant, n := range counts {
		if n > 1 {
			t.Fatalf("variant %q appeared %d times, want at most 1", variant, n)
		}
	}
}

func TestEnumerateTerminatesAtLengthOne(t *testing.T) {
	// D exceeds the word length, but descent must still stop once a variant
	// reaches length 1: "ab" must never produce "".
	cfg := Config{D: 3, P: 7, MaxQueue: 1000}
	out := NewSet(cfg)
	Enumerate([]byte("ab"), cfg, out)

	want := []string{"ab", "a", "b"}
	sort.Strings(want)
	got := variantStrings(out)
	if !equalStringSlices(got, want) {
		t.Fatalf("Enumerate(ab, D=3) = %v, want %v", got, want)
	}
}

func TestEnumerateReuseAcrossCalls(t *testing.T) {
	cfg := Config{D: 1, P: 7, MaxQueue: 100}
	out := NewSet(cfg)

	Enumerate([]byte("word"), cfg, out)
	first := len(out.Variants())

	Enumerate([]byte("hi"), cfg, out)
	second := out.Variants()
	if len(second) == first {
		t.Skip("coincidentally equal lengths; not a failure, just not a useful check")
	}
	want := []string{"hi", "h", "i"}
	sort.Strings(want)
	got := variantStrings(out)
	if !equalStringSlices(got, want) {
		t.Fatalf("Enumerate(hi, D=1) after reuse = %v, want %v", got, want)
	}
}

func TestEnumerateMaxQueueBound(t *testing.T) {
	cfg := Config{D: 2, P: 7, MaxQueue: 3}
	out := NewSet(cfg)
	Enumerate([]byte("generation"), cfg, out)

	if len(out.Variants()) > cfg.MaxQueue {
		t.Fatalf("Enumerate produced %d variants, want at most MaxQueue=%d", len(out.Variants()), cfg.MaxQueue)
	}
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
