package dictionary

import (
	"sync"

	"github.com/coregx/symspell/deletes"
)

// lookupScratch holds the per-call working memory a lookup needs: the
// delete-variant set, the in-progress candidate map, and a reusable
// lowercasing buffer. Pooling these lets concurrent lookups reuse this
// memory instead of allocating it afresh on every call.
//
// Scratch sets are handed out and returned around each stateful operation
// from a sync.Pool, rather than allocating fresh state inside the hot call.
type lookupScratch struct {
	deleteSet *deletes.Set
	// candidates maps a candidate word (keyed by a string copy of its
	// bytes) to its best known distance and frequency found so far, used to
	// dedup the same candidate reached via two different delete-variant
	// paths.
	candidates map[string]candidateInfo
	lowerBuf   []byte
}

type candidateInfo struct {
	word []byte
	freq uint64
	dist int
}

func newLookupScratch(cfg Config) *lookupScratch {
	return &lookupScratch{
		deleteSet: deletes.NewSet(deletes.Config{
			D:        cfg.MaxEditDistance,
			P:        cfg.PrefixLength,
			MaxQueue: cfg.MaxDeleteQueue,
		}),
		candidates: make(map[string]candidateInfo, 64),
		lowerBuf:   make([]byte, 0, MaxTermLen),
	}
}

func (s *lookupScratch) reset() {
	for k := range s.candidates {
		delete(s.candidates, k)
	}
	s.lowerBuf = s.lowerBuf[:0]
}

// lookupScratchPool is a sync.Pool of *lookupScratch, letting concurrent
// readers of a finalized Engine share scratch memory without contending on a
// lock.
type lookupScratchPool struct {
	cfg  Config
	pool sync.Pool
}

func newLookupScratchPool(cfg Config) *lookupScratchPool {
	p := &lookupScratchPool{cfg: cfg}
	p.pool.New = func() any {
		return newLookupScratch(p.cfg)
	}
	return p
}

func (p *lookupScratchPool) get() *lookupScratch {
	s := p.pool.Get().(*lookupScratch)
	s.reset()
	return s
}

func (p *lookupScratchPool) put(s *lookupScratch) {
	p.pool.Put(s)
}
