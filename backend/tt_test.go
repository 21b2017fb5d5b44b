package main

import (
	"sync"
	"testing"
)

func TestTTStoreProbeRoundTrip(t *testing.T) {
	tt := NewTranspositionTable(1<<10, 2)
	hh := heuristicHashFromConfig(GetConfig())

	tt.Store(0xdeadbeef, hh, 6, 1234)
	entry, ok := tt.Probe(0xdeadbeef, hh)
	if !ok {
		t.Fatalf("expected a hit for the stored key")
	}
	if entry.Depth != 6 || entry.Score != 1234 {
		t.Fatalf("entry mismatch: depth=%d score=%d", entry.Depth, entry.Score)
	}
	if _, ok := tt.Probe(0xdeadbeef, hh^1); ok {
		t.Fatalf("expected a miss for a different heuristic fingerprint")
	}
}

func TestTTKeepsDeeperEntryForSameKey(t *testing.T) {
	tt := NewTranspositionTable(16, 2)
	hh := heuristicHashFromConfig(GetConfig())

	tt.Store(7, hh, 8, 100)
	tt.Store(7, hh, 3, -100)
	entry, ok := tt.Probe(7, hh)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if entry.Depth != 8 || entry.Score != 100 {
		t.Fatalf("shallow store must not replace the deeper entry, got depth=%d score=%d",
			entry.Depth, entry.Score)
	}

	tt.Store(7, hh, 9, 55)
	entry, _ = tt.Probe(7, hh)
	if entry.Depth != 9 || entry.Score != 55 {
		t.Fatalf("deeper store must replace, got depth=%d score=%d", entry.Depth, entry.Score)
	}
}

func TestTTEvictsShallowestVictim(t *testing.T) {
	tt := NewTranspositionTable(1, 2)
	hh := uint64(1)

	tt.Store(10, hh, 9, 1)
	tt.Store(20, hh, 2, 2)
	tt.Store(30, hh, 5, 3)

	if _, ok := tt.Probe(20, hh); ok {
		t.Fatalf("expected the shallowest entry to be evicted")
	}
	if _, ok := tt.Probe(10, hh); !ok {
		t.Fatalf("expected the deepest entry to survive")
	}
	if _, ok := tt.Probe(30, hh); !ok {
		t.Fatalf("expected the new entry to be present")
	}
}

func TestTTConcurrentProbeStore(t *testing.T) {
	tt := NewTranspositionTable(1<<12, 2)
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			rng := splitmix64{state: seed}
			for i := 0; i < 4000; i++ {
				key := rng.next()
				tt.Store(key, 1, (i%8)+1, i)
				tt.Probe(key, 1)
				tt.Probe(key^0x9e3779b97f4a7c15, 1)
			}
		}(uint64(g + 1))
	}

	wg.Wait()
	if tt.Count() == 0 {
		t.Fatalf("expected TT to contain entries after concurrent traffic")
	}
}

func TestTTGenerationWrapStaysNonZero(t *testing.T) {
	tt := NewTranspositionTable(16, 1)
	tt.gen.Store(^uint32(0))
	tt.NextGeneration()
	if got := tt.currentGeneration(); got == 0 {
		t.Fatalf("generation must never be zero")
	}
}

func TestTTClear(t *testing.T) {
	tt := NewTranspositionTable(64, 2)
	tt.Store(1, 1, 4, 10)
	tt.Store(2, 1, 4, 20)
	if tt.Count() != 2 {
		t.Fatalf("expected two entries, got %d", tt.Count())
	}
	tt.Clear()
	if tt.Count() != 0 {
		t.Fatalf("expected an empty table after clear, got %d", tt.Count())
	}
}
