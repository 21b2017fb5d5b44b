package main

import "testing"

func TestEvaluateBoardAntisymmetric(t *testing.T) {
	weights := AdvancedHeuristics()
	s := NewGameState()
	playSequence(t, &s,
		Move{Row: 4, Col: 4}, Move{Row: 3, Col: 3},
		Move{Row: 0, Col: 0}, Move{Row: 1, Col: 1},
		Move{Row: 5, Col: 5}, Move{Row: 7, Col: 7},
	)

	forX := EvaluateBoard(&s, PlayerX, weights)
	forO := EvaluateBoard(&s, PlayerO, weights)
	if forX != -forO {
		t.Fatalf("expected antisymmetric scores, got X=%d O=%d", forX, forO)
	}
}

func TestEvaluateBoardCenterOwnership(t *testing.T) {
	weights := AdvancedHeuristics()
	s := NewGameState()
	s.Statuses[4] = SmallWonX
	s.Hash = ComputeHash(&s)

	score := EvaluateBoard(&s, PlayerX, weights)
	expected := weights.CenterOwnedBonus +
		int(float64(weights.WonBoardBonus)*weights.CenterBoardWeight)
	if score != expected {
		t.Fatalf("expected center ownership to score %d, got %d", expected, score)
	}
}

func TestEvaluateBoardWeightsCornerOverEdge(t *testing.T) {
	weights := AdvancedHeuristics()
	corner := NewGameState()
	corner.Statuses[0] = SmallWonX
	edge := NewGameState()
	edge.Statuses[1] = SmallWonX

	if EvaluateBoard(&corner, PlayerX, weights) <= EvaluateBoard(&edge, PlayerX, weights) {
		t.Fatalf("expected a corner sub-board to outscore an edge sub-board")
	}
}

func TestSubBoardPotentialUncontestedLines(t *testing.T) {
	s := NewGameState()
	s.Board.Set(0, 0, CellX)
	s.Board.Set(0, 1, CellX)

	// Top row with two X: 100. (0,0) also opens the left column and the
	// main diagonal with one mark each.
	got := subBoardPotential(&s.Board, 0, PlayerX)
	want := 100 + 10 + 10 + 10
	if got != want {
		t.Fatalf("expected potential %d, got %d", want, got)
	}

	s.Board.Set(0, 2, CellO)
	got = subBoardPotential(&s.Board, 0, PlayerX)
	// Top row is contested; right column and anti-diagonal now belong to O.
	want = 10 + 10 - 10 + 10 - 10
	if got != want {
		t.Fatalf("expected contested potential %d, got %d", want, got)
	}
}
