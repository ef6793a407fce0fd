package dictionary

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/coregx/symspell/deletes"
	"github.com/coregx/symspell/internal/arena"
	"github.com/coregx/symspell/internal/deleteindex"
	"github.com/coregx/symspell/internal/exactindex"
	"github.com/coregx/symspell/internal/xhash"
)

// Load streams a frequency dictionary from r, one entry per line, inserting
// each word into the exact-match index and enumerating its delete variants
// into the delete index.
//
// Each line is split on whitespace; termCol and countCol (both 0-based) pick
// which fields hold the word and its frequency. A countCol of -1 means the
// dictionary carries no frequency column, in which case every word is
// inserted with frequency 1. Blank lines and lines beginning with '#' are
// skipped. A line with too few fields for the requested columns is counted
// in Stats.MalformedLines and otherwise ignored, rather than failing the
// whole load: a dictionary source is not assumed clean.
//
// Load may be called more than once, e.g. to layer several source files into
// one dictionary, but never after Finalize.
func (e *Engine) Load(r io.Reader, termCol, countCol int) error {
	scanner := bufio.NewScanner(r)
	// Dictionary lines can be long (compound entries, CSV-style sources);
	// grow past bufio's 64KiB default rather than failing the scan.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		need := termCol
		if countCol > need {
			need = countCol
		}
		if len(fields) <= need {
			e.malformed++
			continue
		}

		term := fields[termCol]
		freq := uint64(1)
		if countCol >= 0 {
			n, err := strconv.ParseUint(fields[countCol], 10, 64)
			if err == nil && n > 0 {
				freq = n
			}
		}

		if err := e.insertWord(term, freq); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return &Error{Kind: IOErrorKind, Message: "reading dictionary source", Cause: err}
	}
	return nil
}

// insertWord lowercases, clips, and interns term, then records it in both
// the exact-match index and the delete index.
func (e *Engine) insertWord(term string, freq uint64) error {
	s := e.loadScratch
	s.lowerBuf = s.lowerBuf[:0]
	s.lowerBuf = appendLowerASCII(s.lowerBuf, []byte(term))
	lowered := s.lowerBuf
	if len(lowered) > MaxTermLen {
		lowered = lowered[:MaxTermLen]
	}
	if len(lowered) == 0 {
		e.malformed++
		return nil
	}

	hash := xhash.Hash64(lowered)
	if hash == 0 {
		// Astronomically unlikely, but 0 is the empty-slot sentinel in the
		// exact-match table; silently drop rather than corrupt it.
		e.malformed++
		return nil
	}

	word, err := e.strings.AllocCopy(lowered)
	if err != nil {
		return &Error{Kind: ResourceExhaustedKind, Message: "string arena exhausted", Cause: err}
	}

	if _, err := e.exact.Insert(hash, freq, word); err != nil {
		return exactIndexErr(err)
	}
	if freq > e.maxFreq {
		e.maxFreq = freq
	}

	deletes.Enumerate(word, deletes.Config{
		D:        e.cfg.MaxEditDistance,
		P:        e.cfg.PrefixLength,
		MaxQueue: e.cfg.MaxDeleteQueue,
	}, s.deleteSet)

	for _, v := range s.deleteSet.Variants() {
		vh := xhash.Hash64(v)
		if err := e.deleteIdx.Insert(e.entries, vh, v, word, freq); err != nil {
			return deleteIndexErr(err)
		}
	}

	return nil
}

func exactIndexErr(err error) error {
	if err == exactindex.ErrFull {
		return &Error{Kind: ResourceExhaustedKind, Message: "exact-match table full", Cause: err}
	}
	return err
}

func deleteIndexErr(err error) error {
	if err == deleteindex.ErrFull {
		return &Error{Kind: ResourceExhaustedKind, Message: "delete index full", Cause: err}
	}
	if err == arena.ErrExhausted {
		return &Error{Kind: ResourceExhaustedKind, Message: "entry arena exhausted", Cause: err}
	}
	return err
}

// Finalize computes each word's probability and inverse word frequency (IWF)
// from the frequencies accumulated during Load:
//
//	probability = freq / maxFreq
//	iwf         = |ln(probability)|, or 99.0 if probability is 0
//
// Finalize must be called exactly once, after the last Load call and before
// any Lookup or LookupSorted call.
func (e *Engine) Finalize() {
	maxFreq := e.maxFreq
	if maxFreq == 0 {
		maxFreq = 1
	}
	e.exact.ForEach(func(idx int, hash uint64, freq uint64) {
		prob := float32(freq) / float32(maxFreq)
		iwf := float32(99.0)
		if prob > 0 {
			iwf = float32(math.Abs(math.Log(float64(prob))))
		}
		e.exact.SetDerived(idx, prob, iwf)
	})
	e.finalized = true
}
