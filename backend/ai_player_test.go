package main

import (
	"math/rand"
	"testing"
	"time"
)

func TestParseDifficulty(t *testing.T) {
	for _, name := range []string{"easy", "medium", "hard"} {
		d, err := ParseDifficulty(name)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", name, err)
		}
		if d.String() != name {
			t.Fatalf("round trip mismatch: %q -> %q", name, d.String())
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Fatalf("expected an error for an unknown difficulty")
	}
}

func TestSelectorsReturnLegalMoves(t *testing.T) {
	cfg := GetConfig()
	cfg.AiMediumTimeBudgetMs = 100
	cfg.AiMediumMaxPlayouts = 100
	cfg.AiMctsTimeBudgetMs = 100
	cfg.AiMctsMaxPlayouts = 100
	cfg.AiEndgameRootBudgetMs = 200
	cfg.AiEndgameNodeBudgetMs = 150

	s := NewGameState()
	playSequence(t, &s, Move{Row: 4, Col: 4}, Move{Row: 3, Col: 3}, Move{Row: 0, Col: 0})

	for _, difficulty := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		rng := rand.New(rand.NewSource(7))
		tt := NewTranspositionTable(1<<10, 2)
		selector := selectorFor(difficulty, cfg, rng, tt)
		move, ok := selector.SelectMove(&s, s.ToMove)
		if !ok {
			t.Fatalf("%v: expected a move", difficulty)
		}
		if legal, reason := IsLegal(&s, move, s.ToMove); !legal {
			t.Fatalf("%v: illegal move (%d,%d): %s", difficulty, move.Row, move.Col, reason)
		}
	}
}

func TestSelectorsReportNoMoveOnDeadPosition(t *testing.T) {
	s := NewGameState()
	for sb := range s.Statuses {
		s.Statuses[sb] = SmallDraw
	}
	s.Hash = ComputeHash(&s)

	cfg := GetConfig()
	for _, difficulty := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		rng := rand.New(rand.NewSource(1))
		tt := NewTranspositionTable(256, 2)
		if _, ok := selectorFor(difficulty, cfg, rng, tt).SelectMove(&s, PlayerX); ok {
			t.Fatalf("%v: expected NoMove on a dead position", difficulty)
		}
	}
}

func TestEasySelectorDeterministicWithSeed(t *testing.T) {
	cfg := GetConfig()
	s := NewGameState()
	playSequence(t, &s, Move{Row: 4, Col: 4})

	pick := func() Move {
		rng := rand.New(rand.NewSource(99))
		selector := &easySelector{cfg: cfg, rng: rng}
		move, ok := selector.SelectMove(&s, PlayerO)
		if !ok {
			t.Fatalf("expected a move")
		}
		return move
	}
	first := pick()
	for i := 0; i < 5; i++ {
		if next := pick(); !next.Equals(first) {
			t.Fatalf("seeded selection must be reproducible, got (%d,%d) then (%d,%d)",
				first.Row, first.Col, next.Row, next.Col)
		}
	}
}

func TestHardSelectorTakesImmediateWinOverSearch(t *testing.T) {
	s := NewGameState()
	s.Statuses[0] = SmallWonX
	s.Statuses[4] = SmallWonX
	s.Board.Set(6, 6, CellX)
	s.Board.Set(7, 7, CellX)
	// Extra marks push the position past the opening-book window.
	s.Board.Set(0, 1, CellO)
	s.Board.Set(1, 0, CellO)
	s.NextBoard = 8
	s.ToMove = PlayerX
	s.Hash = ComputeHash(&s)

	selector := &hardSelector{
		cfg: GetConfig(),
		rng: rand.New(rand.NewSource(3)),
		tt:  NewTranspositionTable(256, 2),
	}
	move, ok := selector.SelectMove(&s, PlayerX)
	if !ok {
		t.Fatalf("expected a move")
	}
	if !move.Equals(Move{Row: 8, Col: 8}) {
		t.Fatalf("expected the tactical win at (8,8), got (%d,%d)", move.Row, move.Col)
	}
}

func TestSmallBoardTacticBlocksCapture(t *testing.T) {
	s := NewGameState()
	s.Board.Set(0, 0, CellO)
	s.Board.Set(1, 1, CellO)
	s.Hash = ComputeHash(&s)

	moves := LegalMoves(&s)
	move, ok := smallBoardTactic(&s, moves, PlayerX)
	if !ok {
		t.Fatalf("expected a block")
	}
	if !move.Equals(Move{Row: 2, Col: 2}) {
		t.Fatalf("expected the block at (2,2), got (%d,%d)", move.Row, move.Col)
	}
}

func TestAIMoveRespectsBudget(t *testing.T) {
	s := NewGameState()
	start := time.Now()
	move, ok := AIMove(&s, PlayerX, DifficultyMedium, 150*time.Millisecond)
	if !ok {
		t.Fatalf("expected a move")
	}
	if legal, reason := IsLegal(&s, move, PlayerX); !legal {
		t.Fatalf("illegal move (%d,%d): %s", move.Row, move.Col, reason)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("search ran far past its budget: %v", elapsed)
	}
}

func TestAIPlayerAsyncMoveFlow(t *testing.T) {
	cfg := GetConfig()
	prev := cfg
	cfg.AiMediumTimeBudgetMs = 100
	cfg.AiMediumMaxPlayouts = 100
	configStore.Update(cfg)
	defer configStore.Update(prev)

	player := NewAIPlayer(DifficultyMedium)
	state := NewGameState()
	state.applyForSearch(Move{Row: 4, Col: 4}, PlayerX)

	player.StartThinking(state.Clone())
	deadline := time.Now().Add(5 * time.Second)
	for !player.HasMoveReady() {
		if time.Now().After(deadline) {
			t.Fatalf("worker produced no move in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
	move, ok := player.TakeMove()
	if !ok {
		t.Fatalf("expected a move from the worker")
	}
	if legal, reason := IsLegal(&state, move, PlayerO); !legal {
		t.Fatalf("worker returned illegal move (%d,%d): %s", move.Row, move.Col, reason)
	}
	if player.HasMoveReady() {
		t.Fatalf("TakeMove must consume the pending move")
	}
}
