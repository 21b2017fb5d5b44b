package main

import "fmt"

type Cell int8

const (
	CellEmpty Cell = 0
	CellX     Cell = 1
	CellO     Cell = -1
)

const (
	boardSpan = 9
	subSpan   = 3
	cellCount = boardSpan * boardSpan
	subCount  = subSpan * subSpan
)

// Board is the 9x9 cell grid. Fixed array so GameState copies by value.
type Board struct {
	cells [cellCount]Cell
}

func (b *Board) At(row, col int) Cell {
	return b.cells[row*boardSpan+col]
}

func (b *Board) Set(row, col int, value Cell) {
	b.cells[row*boardSpan+col] = value
}

func (b *Board) IsEmpty(row, col int) bool {
	return b.cells[row*boardSpan+col] == CellEmpty
}

func (b *Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

// subBoardIndex maps a cell to its containing sub-board, 0..8 row-major.
func subBoardIndex(row, col int) int {
	return (row/subSpan)*subSpan + col/subSpan
}

// subBoardOrigin returns the top-left cell of sub-board sb.
func subBoardOrigin(sb int) (int, int) {
	return (sb / subSpan) * subSpan, (sb % subSpan) * subSpan
}

// targetSubBoard is the sub-board the opponent is sent to after a move.
func targetSubBoard(row, col int) int {
	return (row % subSpan) * subSpan + col%subSpan
}

func isCenterSubBoard(sb int) bool {
	return sb == 4
}

func isCornerSubBoard(sb int) bool {
	return sb == 0 || sb == 2 || sb == 6 || sb == 8
}

func (c Cell) String() string {
	switch c {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return "."
	}
}

func CellFromPlayer(player Player) Cell {
	return Cell(player)
}

func PlayerFromCell(cell Cell) (Player, error) {
	switch cell {
	case CellX:
		return PlayerX, nil
	case CellO:
		return PlayerO, nil
	default:
		return PlayerNone, fmt.Errorf("empty cell has no player")
	}
}
