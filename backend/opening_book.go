package main

import "math/rand"

// The book prefers the center cell of the center board, then the center
// cells of the four edge boards, then the corners of the whole grid.
var openingBook = []Move{
	{Row: 4, Col: 4},
	{Row: 4, Col: 1}, {Row: 4, Col: 7}, {Row: 1, Col: 4}, {Row: 7, Col: 4},
	{Row: 0, Col: 0}, {Row: 0, Col: 8}, {Row: 8, Col: 0}, {Row: 8, Col: 8},
}

// openingMove picks a book move while the game is still inside the opening
// ply window. Fallbacks: the center cell of any ongoing sub-board, then a
// random legal move.
func openingMove(s *GameState, cfg Config, rng *rand.Rand) (Move, bool) {
	if s.Board.CountEmpty() < cellCount-cfg.AiOpeningPlies {
		return Move{}, false
	}
	moves := LegalMoves(s)
	if len(moves) == 0 {
		return Move{}, false
	}
	legal := make(map[Move]struct{}, len(moves))
	for _, move := range moves {
		legal[move] = struct{}{}
	}
	for _, move := range openingBook {
		if _, ok := legal[move]; ok {
			return move, true
		}
	}
	for _, move := range moves {
		if isCenterCell(move) {
			return move, true
		}
	}
	return moves[rng.Intn(len(moves))], true
}
