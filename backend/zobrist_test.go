package main

import "testing"

func TestHashIncludesConstraintAndStatuses(t *testing.T) {
	s := NewGameState()
	s.Board.Set(0, 0, CellX)
	s.Hash = ComputeHash(&s)

	s2 := s.Clone()
	s2.NextBoard = 3
	s2.Hash = ComputeHash(&s2)
	if s.Hash == s2.Hash {
		t.Fatalf("expected hash to differ for different constraints")
	}

	s3 := s.Clone()
	s3.Statuses[0] = SmallWonX
	s3.Hash = ComputeHash(&s3)
	if s.Hash == s3.Hash {
		t.Fatalf("expected hash to differ for different sub-board statuses")
	}
}

func TestIncrementalHashMatchesFullRebuild(t *testing.T) {
	s := NewGameState()
	moves := []Move{
		{Row: 4, Col: 4}, {Row: 3, Col: 3}, {Row: 0, Col: 0},
		{Row: 1, Col: 1}, {Row: 3, Col: 4}, {Row: 1, Col: 3},
	}
	for _, move := range moves {
		s.applyForSearch(move, s.ToMove)
		if s.Hash != ComputeHash(&s) {
			t.Fatalf("incremental hash diverged after (%d,%d)", move.Row, move.Col)
		}
	}
}

func TestApplyUndoRestoresState(t *testing.T) {
	s := NewGameState()
	s.applyForSearch(Move{Row: 4, Col: 4}, PlayerX)
	original := s.Clone()

	var undos []undoRecord
	for _, move := range []Move{{Row: 3, Col: 3}, {Row: 0, Col: 0}, {Row: 2, Col: 2}} {
		undos = append(undos, s.applyForSearch(move, s.ToMove))
	}
	for i := len(undos) - 1; i >= 0; i-- {
		s.undoForSearch(undos[i])
	}

	if s != original {
		t.Fatalf("state not restored after undo chain")
	}
}

func TestUndoRestoresDecidedSubBoard(t *testing.T) {
	s := NewGameState()
	s.Board.Set(0, 0, CellX)
	s.Board.Set(1, 1, CellX)
	s.Hash = ComputeHash(&s)
	original := s.Clone()

	rec := s.applyForSearch(Move{Row: 2, Col: 2}, PlayerX)
	if s.Statuses[0] != SmallWonX {
		t.Fatalf("expected sub-board 0 won after completing the diagonal")
	}
	s.undoForSearch(rec)
	if s != original {
		t.Fatalf("undo did not restore the sub-board status")
	}
}
