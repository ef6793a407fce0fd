package dictionary

import (
	"bytes"
	"sort"

	"github.com/coregx/symspell/deletes"
	"github.com/coregx/symspell/editdist"
	"github.com/coregx/symspell/internal/xhash"
)

// Suggestion is one candidate correction returned by Lookup or
// LookupSorted.
type Suggestion struct {
	Word        string
	Distance    int
	Frequency   uint64
	Probability float32
	IWF         float32
}

// Lookup finds the single best correction for term within maxDistance edits
// and writes it to out[0], returning 1. It returns 0 if out is empty or no
// candidate exists within maxDistance. "Best" is the lowest-distance,
// highest-frequency, lexicographically-smallest candidate, a total order so
// repeated lookups of the same term are reproducible.
//
// Lookup itself cannot fail: a term with no acceptable correction is not an
// error, just a zero count.
func (e *Engine) Lookup(term string, maxDistance int, out []Suggestion) int {
	return e.lookup(term, maxDistance, out, false)
}

// LookupSorted behaves like Lookup but fills as many of out's slots as there
// are candidates (up to len(out)), sorted best-first by the same total
// order. If cfg.SortedSuggestions is false, the multi-candidate behavior is
// disabled and LookupSorted falls back to returning just the single best
// candidate, the same as Lookup.
func (e *Engine) LookupSorted(term string, maxDistance int, out []Suggestion) int {
	return e.lookup(term, maxDistance, out, e.cfg.SortedSuggestions)
}

func (e *Engine) lookup(term string, maxDistance int, out []Suggestion, sorted bool) int {
	if len(out) == 0 {
		return 0
	}

	s := e.scratch.get()
	defer e.scratch.put(s)

	s.lowerBuf = s.lowerBuf[:0]
	s.lowerBuf = appendLowerASCII(s.lowerBuf, []byte(term))
	qword := s.lowerBuf
	if len(qword) > MaxTermLen {
		qword = qword[:MaxTermLen]
	}
	if len(qword) == 0 {
		return 0
	}

	effectiveD := maxDistance
	if effectiveD > e.cfg.MaxEditDistance {
		effectiveD = e.cfg.MaxEditDistance
	}
	if len(qword) <= 4 && effectiveD > 1 {
		// Short-word rule: a short query has so few possible deletes that a
		// larger distance mostly returns noise, so distance is capped at 1
		// regardless of what the caller asked for.
		effectiveD = 1
	}
	if effectiveD < 0 {
		return 0
	}

	if qh := xhash.Hash64(qword); qh != 0 {
		if idx, ok := e.exact.Lookup(qh); ok && e.exact.Confirm(idx, qword) {
			freq, prob, iwf := e.exact.Get(idx)
			e.record(s, qword, 0, freq, prob, iwf)
		}
	}

	deletes.Enumerate(qword, deletes.Config{
		D:        effectiveD,
		P:        e.cfg.PrefixLength,
		MaxQueue: e.cfg.MaxDeleteQueue,
	}, s.deleteSet)

	for _, v := range s.deleteSet.Variants() {
		vh := xhash.Hash64(v)
		entry, ok := e.deleteIdx.Lookup(vh, v)
		if !ok {
			continue
		}
		for i, w := range entry.Words {
			dist := editdist.Bounded(qword, w, effectiveD)
			if dist > effectiveD {
				continue
			}
			freq, prob, iwf, found := e.probeWord(w)
			if !found {
				// The word has no exact-index slot; fall back to the
				// delete-index's own frequency and leave probability/IWF at
				// zero.
				freq = entry.Freqs[i]
			}
			e.record(s, w, dist, freq, prob, iwf)
		}
	}

	results := make([]Suggestion, 0, len(s.candidates))
	for word, c := range s.candidates {
		results = append(results, Suggestion{
			Word:        word,
			Distance:    c.dist,
			Frequency:   c.freq,
			Probability: e.probFor(c.word),
			IWF:         e.iwfFor(c.word),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return candidateLess(results[i], results[j])
	})

	if !sorted && len(results) > 1 {
		results = results[:1]
	}

	n := copy(out, results)
	return n
}

// record folds a candidate into s.candidates, keeping the lowest distance
// seen for a given word and, among equal distances, the highest frequency:
// frequency can only improve a candidate's rank, never its distance.
func (e *Engine) record(s *lookupScratch, word []byte, dist int, freq uint64, prob, iwf float32) {
	key := string(word)
	existing, ok := s.candidates[key]
	if ok && (existing.dist < dist || (existing.dist == dist && existing.freq >= freq)) {
		return
	}
	s.candidates[key] = candidateInfo{word: append([]byte(nil), word...), freq: freq, dist: dist}
}

// probeWord resolves the authoritative frequency, probability, and IWF for
// word via the exact-match index. Probability and IWF are zero until
// Finalize has run.
func (e *Engine) probeWord(word []byte) (freq uint64, prob, iwf float32, ok bool) {
	h := xhash.Hash64(word)
	if h == 0 {
		return 0, 0, 0, false
	}
	idx, found := e.exact.Lookup(h)
	if !found {
		return 0, 0, 0, false
	}
	freq, prob, iwf = e.exact.Get(idx)
	return freq, prob, iwf, true
}

func (e *Engine) probFor(word []byte) float32 {
	_, prob, _, ok := e.probeWord(word)
	if !ok {
		return 0
	}
	return prob
}

func (e *Engine) iwfFor(word []byte) float32 {
	_, _, iwf, ok := e.probeWord(word)
	if !ok {
		return 0
	}
	return iwf
}

// candidateLess orders suggestions: lowest distance first, then highest
// frequency, then lexicographically smallest word. The third key exists
// purely to make the order total, since distance and frequency alone can
// tie, and a reproducible order matters for repeated lookups of the same
// dictionary.
func candidateLess(a, b Suggestion) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	if a.Frequency != b.Frequency {
		return a.Frequency > b.Frequency
	}
	return bytes.Compare([]byte(a.Word), []byte(b.Word)) < 0
}

// GetProbability returns the probability SymSpell computed for word at
// Finalize time, and whether word is present in the dictionary at all. A
// present word with probability exactly 0 (possible only before Finalize has
// run, since Load never records a frequency of 0) is therefore
// distinguishable from an absent word, unlike a bare float32 return would
// allow.
func (e *Engine) GetProbability(word string) (float32, bool) {
	buf := appendLowerASCII(make([]byte, 0, len(word)), []byte(word))
	_, prob, _, ok := e.probeWord(buf)
	return prob, ok
}

// GetIWF returns the inverse word frequency SymSpell computed for word at
// Finalize time, and whether word is present in the dictionary.
func (e *Engine) GetIWF(word string) (float32, bool) {
	buf := appendLowerASCII(make([]byte, 0, len(word)), []byte(word))
	_, _, iwf, ok := e.probeWord(buf)
	return iwf, ok
}
