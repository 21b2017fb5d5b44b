package main

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove    = errors.New("illegal move")
	ErrGameAlreadyOver = errors.New("game already over")
)

// LegalMoves lists every legal move in row-major order. When the constraint
// names a sub-board that is no longer ongoing it falls back to any ongoing
// sub-board, so callers never see a stale constraint.
func LegalMoves(s *GameState) []Move {
	return AppendLegalMoves(s, nil)
}

// AppendLegalMoves appends into moves (reset to zero length) to let search
// loops reuse one backing slice.
func AppendLegalMoves(s *GameState, moves []Move) []Move {
	moves = moves[:0]
	sb := s.NextBoard
	if sb != anywhereBoard && s.Statuses[sb] == SmallOngoing {
		baseRow, baseCol := subBoardOrigin(sb)
		for r := baseRow; r < baseRow+subSpan; r++ {
			for c := baseCol; c < baseCol+subSpan; c++ {
				if s.Board.IsEmpty(r, c) {
					moves = append(moves, Move{Row: r, Col: c})
				}
			}
		}
		return moves
	}
	for r := 0; r < boardSpan; r++ {
		for c := 0; c < boardSpan; c++ {
			if s.Board.IsEmpty(r, c) && s.Statuses[subBoardIndex(r, c)] == SmallOngoing {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// IsLegal reports whether move is playable by player right now, with a reason
// when it is not.
func IsLegal(s *GameState, move Move, player Player) (bool, string) {
	if !move.IsValid() {
		return false, "out of bounds"
	}
	if player != s.ToMove {
		return false, "out of turn"
	}
	if !s.Board.IsEmpty(move.Row, move.Col) {
		return false, "occupied"
	}
	sb := move.SubBoard()
	if s.Statuses[sb] != SmallOngoing {
		return false, "sub-board decided"
	}
	if s.NextBoard != anywhereBoard && s.Statuses[s.NextBoard] == SmallOngoing && sb != s.NextBoard {
		return false, "wrong sub-board"
	}
	return true, ""
}

// ApplyMove validates and applies one move, updating the affected sub-board
// status and the next-board constraint. The state is untouched on error.
func ApplyMove(s *GameState, move Move, player Player) error {
	if CheckBigWinner(s) != PlayerNone {
		return ErrGameAlreadyOver
	}
	if ok, reason := IsLegal(s, move, player); !ok {
		return fmt.Errorf("%w: %s", ErrIllegalMove, reason)
	}
	s.applyForSearch(move, player)
	return nil
}

// checkSmallWinner applies the sum-of-marks test to one sub-board: three rows,
// three columns, two diagonals; |sum| == 3 signals a win, sign gives the owner.
func checkSmallWinner(b *Board, sb int) Player {
	baseRow, baseCol := subBoardOrigin(sb)
	for k := 0; k < subSpan; k++ {
		rowSum := 0
		colSum := 0
		for d := 0; d < subSpan; d++ {
			rowSum += int(b.At(baseRow+k, baseCol+d))
			colSum += int(b.At(baseRow+d, baseCol+k))
		}
		if rowSum == subSpan || colSum == subSpan {
			return PlayerX
		}
		if rowSum == -subSpan || colSum == -subSpan {
			return PlayerO
		}
	}
	diag := 0
	anti := 0
	for d := 0; d < subSpan; d++ {
		diag += int(b.At(baseRow+d, baseCol+d))
		anti += int(b.At(baseRow+d, baseCol+subSpan-1-d))
	}
	if diag == subSpan || anti == subSpan {
		return PlayerX
	}
	if diag == -subSpan || anti == -subSpan {
		return PlayerO
	}
	return PlayerNone
}

var metaLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// CheckBigWinner applies the three-in-a-row test to the meta grid of
// sub-board statuses.
func CheckBigWinner(s *GameState) Player {
	for _, line := range metaLines {
		first := statusOwner(s.Statuses[line[0]])
		if first == PlayerNone {
			continue
		}
		if statusOwner(s.Statuses[line[1]]) == first && statusOwner(s.Statuses[line[2]]) == first {
			return first
		}
	}
	return PlayerNone
}

// allSubBoardsDecided reports terminal-by-exhaustion: no ongoing sub-board
// means no legal moves.
func allSubBoardsDecided(s *GameState) bool {
	for _, status := range s.Statuses {
		if status == SmallOngoing {
			return false
		}
	}
	return true
}

// IsTerminal returns the winner (PlayerNone for a draw) and whether the game
// is over.
func IsTerminal(s *GameState) (Player, bool) {
	if winner := CheckBigWinner(s); winner != PlayerNone {
		return winner, true
	}
	if allSubBoardsDecided(s) {
		return PlayerNone, true
	}
	return PlayerNone, false
}
