package main

import "sync"

// Zobrist keys cover cells, sub-board statuses and the constraint. The side
// to move is omitted on purpose: turns alternate from X, so the mark count
// already determines the mover and two states with equal grids share a key.
type zobristKeys struct {
	cells      [cellCount][2]uint64
	statuses   [subCount][4]uint64
	constraint [subCount + 1]uint64
}

var (
	zobristOnce sync.Once
	zobrist     zobristKeys
)

func zobristInit() {
	rng := splitmix64{state: 0x9e3779b97f4a7c15}
	for i := range zobrist.cells {
		zobrist.cells[i][0] = rng.next()
		zobrist.cells[i][1] = rng.next()
	}
	for i := range zobrist.statuses {
		for j := range zobrist.statuses[i] {
			zobrist.statuses[i][j] = rng.next()
		}
	}
	for i := range zobrist.constraint {
		zobrist.constraint[i] = rng.next()
	}
}

func zobristCell(row, col int, player Player) uint64 {
	zobristOnce.Do(zobristInit)
	side := 0
	if player == PlayerO {
		side = 1
	}
	return zobrist.cells[row*boardSpan+col][side]
}

func zobristStatus(sb int, status SmallStatus) uint64 {
	zobristOnce.Do(zobristInit)
	return zobrist.statuses[sb][status]
}

func zobristConstraint(nextBoard int) uint64 {
	zobristOnce.Do(zobristInit)
	return zobrist.constraint[nextBoard+1]
}

// ComputeHash builds the full hash from scratch. applyForSearch keeps it
// current incrementally; this is the reset/verification path.
func ComputeHash(s *GameState) uint64 {
	var hash uint64
	for r := 0; r < boardSpan; r++ {
		for c := 0; c < boardSpan; c++ {
			cell := s.Board.At(r, c)
			if cell == CellEmpty {
				continue
			}
			player, err := PlayerFromCell(cell)
			if err != nil {
				continue
			}
			hash ^= zobristCell(r, c, player)
		}
	}
	for sb, status := range s.Statuses {
		hash ^= zobristStatus(sb, status)
	}
	hash ^= zobristConstraint(s.NextBoard)
	return hash
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
