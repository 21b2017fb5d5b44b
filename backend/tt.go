package main

import (
	"sync"
	"sync/atomic"
)

// TTEntry is a depth-gated cache slot for the endgame solver. Entries carry
// no exact/bound flag on purpose: a stored score is reused whenever it was
// computed at least as deep as the current request, which is an approximation
// the solver's move choices depend on.
type TTEntry struct {
	Key           uint64
	HeuristicHash uint64
	Depth         int
	Score         int32
	GenWritten    uint32
	Valid         bool
}

// TranspositionTable is a set-associative table with striped locks. One table
// is owned by one AI session; keys carry no game identifier, so sharing a
// table between concurrent games would corrupt results.
type TranspositionTable struct {
	mask        uint64
	buckets     int
	entries     []TTEntry
	stripeLocks []sync.RWMutex
	stripeMask  uint64
	gen         atomic.Uint32
}

func NewTranspositionTable(size uint64, buckets int) *TranspositionTable {
	if buckets <= 0 {
		buckets = 2
	}
	if size < 1 {
		size = 1
	}
	if (size & (size - 1)) != 0 {
		size = nextPowerOfTwo(size)
	}
	maxStripes := 64
	if int(size) < maxStripes {
		maxStripes = int(size)
	}
	stripes := 1
	for stripes*2 <= maxStripes {
		stripes *= 2
	}
	tt := &TranspositionTable{
		mask:        size - 1,
		buckets:     buckets,
		entries:     make([]TTEntry, int(size)*buckets),
		stripeLocks: make([]sync.RWMutex, stripes),
		stripeMask:  uint64(stripes - 1),
	}
	tt.gen.Store(1)
	return tt
}

func (tt *TranspositionTable) NextGeneration() {
	gen := tt.gen.Add(1)
	if gen == 0 {
		tt.gen.CompareAndSwap(0, 1)
	}
}

func (tt *TranspositionTable) Clear() {
	tt.lockAllStripes()
	defer tt.unlockAllStripes()
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
	tt.gen.Store(1)
}

func (tt *TranspositionTable) bucketIndex(key uint64) int {
	return int(key&tt.mask) * tt.buckets
}

func (tt *TranspositionTable) stripeIndexForKey(key uint64) int {
	return int((key & tt.mask) & tt.stripeMask)
}

// Probe returns the cached entry for key, if any. Depth gating is the
// caller's check: reuse only when entry.Depth >= the requested depth.
func (tt *TranspositionTable) Probe(key uint64, heuristicHash uint64) (TTEntry, bool) {
	stripe := tt.stripeIndexForKey(key)
	tt.stripeLocks[stripe].RLock()
	defer tt.stripeLocks[stripe].RUnlock()
	start := tt.bucketIndex(key)
	for i := 0; i < tt.buckets; i++ {
		entry := tt.entries[start+i]
		if entry.Valid && entry.Key == key && entry.HeuristicHash == heuristicHash {
			return entry, true
		}
	}
	return TTEntry{}, false
}

func (tt *TranspositionTable) Store(key uint64, heuristicHash uint64, depth int, score int) {
	stripe := tt.stripeIndexForKey(key)
	tt.stripeLocks[stripe].Lock()
	defer tt.stripeLocks[stripe].Unlock()
	gen := tt.currentGeneration()
	start := tt.bucketIndex(key)

	entry := TTEntry{
		Key:           key,
		HeuristicHash: heuristicHash,
		Depth:         depth,
		Score:         clampScore(score),
		GenWritten:    gen,
		Valid:         true,
	}

	// Same position: keep the deeper result.
	for i := 0; i < tt.buckets; i++ {
		idx := start + i
		existing := tt.entries[idx]
		if existing.Valid && existing.Key == key && existing.HeuristicHash == heuristicHash {
			if depth >= existing.Depth {
				tt.entries[idx] = entry
			}
			return
		}
	}
	for i := 0; i < tt.buckets; i++ {
		idx := start + i
		if !tt.entries[idx].Valid {
			tt.entries[idx] = entry
			return
		}
	}
	// Full bucket: evict the shallowest, oldest-written victim.
	victim := start
	for i := 1; i < tt.buckets; i++ {
		idx := start + i
		if tt.entries[idx].Depth < tt.entries[victim].Depth ||
			(tt.entries[idx].Depth == tt.entries[victim].Depth &&
				tt.entries[idx].GenWritten < tt.entries[victim].GenWritten) {
			victim = idx
		}
	}
	tt.entries[victim] = entry
}

func (tt *TranspositionTable) Count() int {
	tt.lockAllStripesRead()
	defer tt.unlockAllStripesRead()
	count := 0
	for i := range tt.entries {
		if tt.entries[i].Valid {
			count++
		}
	}
	return count
}

func (tt *TranspositionTable) Capacity() int {
	if tt == nil {
		return 0
	}
	return len(tt.entries)
}

func (tt *TranspositionTable) currentGeneration() uint32 {
	gen := tt.gen.Load()
	if gen != 0 {
		return gen
	}
	if tt.gen.CompareAndSwap(0, 1) {
		return 1
	}
	gen = tt.gen.Load()
	if gen == 0 {
		return 1
	}
	return gen
}

func (tt *TranspositionTable) lockAllStripes() {
	for i := range tt.stripeLocks {
		tt.stripeLocks[i].Lock()
	}
}

func (tt *TranspositionTable) unlockAllStripes() {
	for i := len(tt.stripeLocks) - 1; i >= 0; i-- {
		tt.stripeLocks[i].Unlock()
	}
}

func (tt *TranspositionTable) lockAllStripesRead() {
	for i := range tt.stripeLocks {
		tt.stripeLocks[i].RLock()
	}
}

func (tt *TranspositionTable) unlockAllStripesRead() {
	for i := len(tt.stripeLocks) - 1; i >= 0; i-- {
		tt.stripeLocks[i].RUnlock()
	}
}

func clampScore(score int) int32 {
	const maxScore = 1<<31 - 1
	if score > maxScore {
		return maxScore
	}
	if score < -maxScore {
		return -maxScore
	}
	return int32(score)
}

func nextPowerOfTwo(v uint64) uint64 {
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	v++
	return v
}
