package symspell_test

import (
	"strings"
	"testing"

	"github.com/coregx/symspell"
)

func buildDictionary(t *testing.T) *symspell.Dictionary {
	t.Helper()
	cfg := symspell.DefaultConfig()
	cfg.StringArenaBytes = 1 << 16
	cfg.EntryArenaBytes = 1 << 16
	cfg.ExactTableSize = 1021
	cfg.DeleteIndexSize = 2039
	cfg.RequirePrimeTableSize = false

	dict, err := symspell.CreateWithConfig(cfg)
	if err != nil {
		t.Fatalf("CreateWithConfig() error = %v", err)
	}

	src := "hello\t2000\nworld\t1800\nreceive\t900\nspelling\t700\nthe\t100000\n"
	if err := dict.Load(strings.NewReader(src), 0, 1); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	dict.Finalize()
	return dict
}

func TestCreateValidatesConfig(t *testing.T) {
	if _, err := symspell.Create(0, 7); err == nil {
		t.Fatal("Create(0, 7) error = nil, want error for invalid max edit distance")
	}
}

func TestEndToEndLookup(t *testing.T) {
	dict := buildDictionary(t)
	defer dict.Close()

	out := make([]symspell.Suggestion, 1)
	n := dict.Lookup("helo", 2, out)
	if n != 1 || out[0].Word != "hello" {
		t.Fatalf("Lookup(\"helo\", 2) = (%d, %+v), want (1, hello)", n, out)
	}
}

func TestEndToEndStats(t *testing.T) {
	dict := buildDictionary(t)
	defer dict.Close()

	stats := dict.GetStats()
	if stats.WordCount != 5 {
		t.Fatalf("WordCount = %d, want 5", stats.WordCount)
	}
}

func TestEndToEndProbability(t *testing.T) {
	dict := buildDictionary(t)
	defer dict.Close()

	prob, ok := dict.GetProbability("the")
	if !ok || prob != 1.0 {
		t.Fatalf("GetProbability(\"the\") = (%v, %v), want (1.0, true)", prob, ok)
	}
	if _, ok := dict.GetProbability("nonexistentword"); ok {
		t.Fatal("GetProbability() ok=true for absent word, want false")
	}
}

func TestMustCreatePanicsOnInvalidConfig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustCreate(0, 7) did not panic on invalid config")
		}
	}()
	symspell.MustCreate(0, 7)
}

func TestLoadDictionaryMissingFileReturnsIOError(t *testing.T) {
	dict := symspell.MustCreate(2, 7)
	defer dict.Close()

	err := dict.LoadDictionary("/nonexistent/path/to/dictionary.txt", 0, 1)
	if err == nil {
		t.Fatal("LoadDictionary() error = nil, want error for missing file")
	}
	var derr *symspell.Error
	if !asError(err, &derr) || derr.Kind != symspell.IOErrorKind {
		t.Fatalf("LoadDictionary() error = %v, want *Error{Kind: IOErrorKind}", err)
	}
}

func asError(err error, target **symspell.Error) bool {
	e, ok := err.(*symspell.Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
