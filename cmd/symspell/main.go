// Command symspell is a small CLI harness for a SymSpell dictionary: it
// loads a frequency dictionary, then checks any number of
// "misspelled expected" argument pairs against it, exiting 0 only if every
// pair corrects as expected.
//
//	symspell dictionary.txt helo hello recieve receive
package main

import (
	"fmt"
	"os"

	"github.com/coregx/symspell"
)

const maxEditDistance = 2

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <dictionary_file> [misspelled expected ...]\n", os.Args[0])
		os.Exit(1)
	}

	dict := symspell.MustCreate(maxEditDistance, 7)
	defer dict.Close()

	dictPath := os.Args[1]
	if err := dict.LoadDictionary(dictPath, 0, 1); err != nil {
		fmt.Fprintf(os.Stderr, "loading %s: %v\n", dictPath, err)
		os.Exit(1)
	}
	dict.Finalize()

	stats := dict.GetStats()
	fmt.Fprintf(os.Stderr, "loaded %s\n", stats)

	rest := os.Args[2:]
	if len(rest) == 0 {
		os.Exit(0)
	}
	if len(rest)%2 != 0 {
		fmt.Fprintf(os.Stderr, "arguments after the dictionary file must come in misspelled/expected pairs\n")
		os.Exit(1)
	}

	failures := 0
	out := make([]symspell.Suggestion, 1)
	for i := 0; i < len(rest); i += 2 {
		misspelled, expected := rest[i], rest[i+1]

		n := dict.Lookup(misspelled, maxEditDistance, out)
		got := ""
		if n > 0 {
			got = out[0].Word
		}

		if got != expected {
			fmt.Fprintf(os.Stderr, "FAIL %s -> %q, want %q\n", misspelled, got, expected)
			failures++
			continue
		}
		fmt.Fprintf(os.Stderr, "OK   %s -> %q\n", misspelled, got)
	}

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "\n%d/%d pairs failed\n", failures, len(rest)/2)
		os.Exit(1)
	}
}
