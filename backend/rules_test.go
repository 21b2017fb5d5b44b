package main

import (
	"errors"
	"testing"
)

func playSequence(t *testing.T, s *GameState, moves ...Move) {
	t.Helper()
	for _, move := range moves {
		if err := ApplyMove(s, move, s.ToMove); err != nil {
			t.Fatalf("move (%d,%d) rejected: %v", move.Row, move.Col, err)
		}
	}
}

func TestApplyMoveSetsConstraint(t *testing.T) {
	s := NewGameState()
	playSequence(t, &s, Move{Row: 4, Col: 4})
	if s.NextBoard != 4 {
		t.Fatalf("expected constraint on center sub-board, got %d", s.NextBoard)
	}
	if s.ToMove != PlayerO {
		t.Fatalf("expected O to move, got %v", s.ToMove)
	}

	// (3,3) is the top-left cell of the center sub-board and sends the
	// opponent to sub-board 0.
	playSequence(t, &s, Move{Row: 3, Col: 3})
	if s.NextBoard != 0 {
		t.Fatalf("expected constraint on sub-board 0, got %d", s.NextBoard)
	}
}

func TestSmallBoardTopRowWin(t *testing.T) {
	s := NewGameState()
	s.Board.Set(0, 0, CellX)
	s.Board.Set(0, 1, CellX)
	s.Board.Set(0, 2, CellX)
	s.refreshSubBoardStatus(0)
	s.Hash = ComputeHash(&s)

	if s.Statuses[0] != SmallWonX {
		t.Fatalf("expected sub-board 0 won by X, got %v", s.Statuses[0])
	}
	if winner := CheckBigWinner(&s); winner != PlayerNone {
		t.Fatalf("one sub-board must not decide the game, got winner %v", winner)
	}
}

func TestMetaDiagonalWinsBigBoard(t *testing.T) {
	s := NewGameState()
	s.Statuses[0] = SmallWonX
	s.Statuses[4] = SmallWonX
	s.Statuses[8] = SmallWonX
	s.Hash = ComputeHash(&s)

	if winner := CheckBigWinner(&s); winner != PlayerX {
		t.Fatalf("expected X to win on the meta diagonal, got %v", winner)
	}
	if winner, over := IsTerminal(&s); !over || winner != PlayerX {
		t.Fatalf("expected terminal X win, got winner=%v over=%v", winner, over)
	}
}

func TestLegalMovesEmptyOnlyWhenTerminal(t *testing.T) {
	s := NewGameState()
	if len(LegalMoves(&s)) != cellCount {
		t.Fatalf("expected %d opening moves, got %d", cellCount, len(LegalMoves(&s)))
	}

	for sb := range s.Statuses {
		s.Statuses[sb] = SmallDraw
	}
	s.Hash = ComputeHash(&s)
	if moves := LegalMoves(&s); len(moves) != 0 {
		t.Fatalf("expected no legal moves with every sub-board decided, got %d", len(moves))
	}
	if _, over := IsTerminal(&s); !over {
		t.Fatalf("expected terminal state")
	}
}

func TestApplyMoveRejections(t *testing.T) {
	s := NewGameState()
	playSequence(t, &s, Move{Row: 4, Col: 4})

	cases := []struct {
		name   string
		move   Move
		player Player
	}{
		{"out of bounds", Move{Row: 9, Col: 0}, PlayerO},
		{"out of turn", Move{Row: 3, Col: 3}, PlayerX},
		{"occupied", Move{Row: 4, Col: 4}, PlayerO},
		{"wrong sub-board", Move{Row: 0, Col: 0}, PlayerO},
	}
	for _, tc := range cases {
		before := s.Clone()
		err := ApplyMove(&s, tc.move, tc.player)
		if !errors.Is(err, ErrIllegalMove) {
			t.Fatalf("%s: expected ErrIllegalMove, got %v", tc.name, err)
		}
		if s != before {
			t.Fatalf("%s: state mutated by rejected move", tc.name)
		}
	}
}

func TestApplyMoveAfterGameOver(t *testing.T) {
	s := NewGameState()
	s.Statuses[0] = SmallWonO
	s.Statuses[1] = SmallWonO
	s.Statuses[2] = SmallWonO
	s.Hash = ComputeHash(&s)

	err := ApplyMove(&s, Move{Row: 4, Col: 4}, PlayerX)
	if !errors.Is(err, ErrGameAlreadyOver) {
		t.Fatalf("expected ErrGameAlreadyOver, got %v", err)
	}
}

func TestDecidedSubBoardRejected(t *testing.T) {
	s := NewGameState()
	s.Board.Set(0, 0, CellX)
	s.Board.Set(1, 1, CellX)
	s.Board.Set(2, 2, CellX)
	s.refreshSubBoardStatus(0)
	s.Hash = ComputeHash(&s)

	if ok, reason := IsLegal(&s, Move{Row: 0, Col: 1}, PlayerX); ok || reason != "sub-board decided" {
		t.Fatalf("expected decided sub-board rejection, got ok=%v reason=%q", ok, reason)
	}
}

func TestStaleConstraintFallsBackToAnyBoard(t *testing.T) {
	s := NewGameState()
	s.Board.Set(0, 0, CellX)
	s.Board.Set(1, 1, CellX)
	s.Board.Set(2, 2, CellX)
	s.refreshSubBoardStatus(0)
	s.NextBoard = 0
	s.Hash = ComputeHash(&s)

	moves := LegalMoves(&s)
	if len(moves) == 0 {
		t.Fatalf("expected fallback moves outside the decided sub-board")
	}
	for _, move := range moves {
		if move.SubBoard() == 0 {
			t.Fatalf("move (%d,%d) targets a decided sub-board", move.Row, move.Col)
		}
	}
}

func TestFreeSendGrantsAnywhere(t *testing.T) {
	s := NewGameState()
	s.Board.Set(3, 3, CellO)
	s.Board.Set(4, 4, CellO)
	s.Board.Set(5, 5, CellO)
	s.refreshSubBoardStatus(4)
	s.Hash = ComputeHash(&s)

	// (1,1) targets the decided center sub-board, so the opponent plays
	// anywhere next.
	rec := s.applyForSearch(Move{Row: 1, Col: 1}, PlayerX)
	if s.NextBoard != anywhereBoard {
		t.Fatalf("expected anywhere constraint, got %d", s.NextBoard)
	}
	s.undoForSearch(rec)
}
