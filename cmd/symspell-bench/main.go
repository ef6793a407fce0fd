// Command symspell-bench measures a SymSpell dictionary's correction
// accuracy and lookup throughput against a labeled test set of
// "wrong<TAB>correct" pairs, writing every pair it got wrong to errors.txt
// in the working directory.
//
//	symspell-bench dictionary.txt misspellings.txt
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/coregx/symspell"
)

const (
	maxEditDistance = 2
	prefixLength    = 7
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <dictionary_file> <misspelling_file>\n", os.Args[0])
		os.Exit(1)
	}
	dictPath, testPath := os.Args[1], os.Args[2]

	dict := symspell.MustCreate(maxEditDistance, prefixLength)
	defer dict.Close()

	loadStart := time.Now()
	if err := dict.LoadDictionary(dictPath, 0, 1); err != nil {
		fmt.Fprintf(os.Stderr, "loading %s: %v\n", dictPath, err)
		os.Exit(1)
	}
	dict.Finalize()
	loadElapsed := time.Since(loadStart)

	stats := dict.GetStats()
	fmt.Printf("dictionary: %s\n", stats)
	fmt.Printf("load time:  %s\n", loadElapsed.Round(time.Millisecond))

	pairs, err := readPairs(testPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", testPath, err)
		os.Exit(1)
	}
	if len(pairs) == 0 {
		fmt.Fprintln(os.Stderr, "no test pairs found")
		os.Exit(1)
	}

	var misses []pair
	out := make([]symspell.Suggestion, 1)

	lookupStart := time.Now()
	correct := 0
	for _, p := range pairs {
		n := dict.Lookup(p.wrong, maxEditDistance, out)
		got := ""
		if n > 0 {
			got = out[0].Word
		}
		if got == p.correct {
			correct++
		} else {
			misses = append(misses, p)
		}
	}
	lookupElapsed := time.Since(lookupStart)

	accuracy := float64(correct) / float64(len(pairs)) * 100
	perLookup := lookupElapsed / time.Duration(len(pairs))

	fmt.Printf("pairs:      %s\n", humanize.Comma(int64(len(pairs))))
	fmt.Printf("correct:    %s (%.2f%%)\n", humanize.Comma(int64(correct)), accuracy)
	fmt.Printf("total time: %s\n", lookupElapsed.Round(time.Millisecond))
	fmt.Printf("per lookup: %s\n", perLookup)

	if len(misses) > 0 {
		if err := writeMisses(misses); err != nil {
			fmt.Fprintf(os.Stderr, "writing errors.txt: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %d misses to errors.txt\n", len(misses))
	}
}

type pair struct {
	wrong   string
	correct string
}

func readPairs(path string) ([]pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pairs []pair
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		wrong, correct, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		pairs = append(pairs, pair{wrong: wrong, correct: correct})
	}
	return pairs, scanner.Err()
}

func writeMisses(misses []pair) error {
	f, err := os.Create("errors.txt")
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, m := range misses {
		fmt.Fprintf(w, "%s\t%s\n", m.wrong, m.correct)
	}
	return w.Flush()
}
