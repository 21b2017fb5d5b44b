package main

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewMove(row, col int) Move {
	return Move{Row: row, Col: col}
}

func (m Move) IsValid() bool {
	return m.Row >= 0 && m.Col >= 0 && m.Row < boardSpan && m.Col < boardSpan
}

func (m Move) Equals(other Move) bool {
	return m.Row == other.Row && m.Col == other.Col
}

// SubBoard returns the index of the sub-board containing the move.
func (m Move) SubBoard() int {
	return subBoardIndex(m.Row, m.Col)
}

func isCenterCell(m Move) bool {
	return m.Row%subSpan == 1 && m.Col%subSpan == 1
}

func isCornerCell(m Move) bool {
	return m.Row%subSpan != 1 && m.Col%subSpan != 1
}
