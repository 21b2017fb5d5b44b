package main

import (
	"math/rand"
	"testing"
)

func TestOpeningMovePrefersCenter(t *testing.T) {
	s := NewGameState()
	rng := rand.New(rand.NewSource(1))
	move, ok := openingMove(&s, GetConfig(), rng)
	if !ok {
		t.Fatalf("expected a book move on the empty board")
	}
	if !move.Equals(Move{Row: 4, Col: 4}) {
		t.Fatalf("expected the center cell, got (%d,%d)", move.Row, move.Col)
	}
}

func TestOpeningMoveStaysLegalUnderConstraint(t *testing.T) {
	s := NewGameState()
	playSequence(t, &s, Move{Row: 4, Col: 4})

	rng := rand.New(rand.NewSource(1))
	move, ok := openingMove(&s, GetConfig(), rng)
	if !ok {
		t.Fatalf("expected an opening move for the reply")
	}
	if legal, reason := IsLegal(&s, move, PlayerO); !legal {
		t.Fatalf("book move (%d,%d) is illegal: %s", move.Row, move.Col, reason)
	}
}

func TestOpeningMoveWindowCloses(t *testing.T) {
	s := NewGameState()
	playSequence(t, &s,
		Move{Row: 4, Col: 4}, Move{Row: 3, Col: 3},
		Move{Row: 0, Col: 0}, Move{Row: 1, Col: 1},
	)

	rng := rand.New(rand.NewSource(1))
	if _, ok := openingMove(&s, GetConfig(), rng); ok {
		t.Fatalf("expected the book window to be closed after the opening plies")
	}
}
