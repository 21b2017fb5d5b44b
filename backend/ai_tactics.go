package main

// One-ply tactical layer: immediate wins, critical blocks, and the
// safe-capture filter that keeps sub-board wins from handing the opponent a
// decisive reply.

// findImmediateWin returns the first legal move that wins the big board
// outright for player.
func findImmediateWin(s *GameState, player Player) (Move, bool) {
	scratch := s.Clone()
	for _, move := range LegalMoves(&scratch) {
		rec := scratch.applyForSearch(move, player)
		won := CheckBigWinner(&scratch) == player
		scratch.undoForSearch(rec)
		if won {
			return move, true
		}
	}
	return Move{}, false
}

// findCriticalBlock looks for a square the opponent could use to win the big
// board at once and claims it. Failing that, it blocks the opponent's capture
// of the most valuable sub-board reachable from our legal squares.
func findCriticalBlock(s *GameState, player Player, weights HeuristicConfig) (Move, bool) {
	opponent := otherPlayer(player)
	scratch := s.Clone()
	moves := LegalMoves(&scratch)

	for _, move := range moves {
		scratch.Board.Set(move.Row, move.Col, CellFromPlayer(opponent))
		sb := move.SubBoard()
		prevStatus := scratch.Statuses[sb]
		scratch.refreshSubBoardStatus(sb)
		winsBig := CheckBigWinner(&scratch) == opponent
		scratch.Statuses[sb] = prevStatus
		scratch.Board.Set(move.Row, move.Col, CellEmpty)
		if winsBig {
			return move, true
		}
	}

	best := Move{}
	bestWeight := -1.0
	for _, move := range moves {
		scratch.Board.Set(move.Row, move.Col, CellFromPlayer(opponent))
		sb := move.SubBoard()
		captures := checkSmallWinner(&scratch.Board, sb) == opponent
		scratch.Board.Set(move.Row, move.Col, CellEmpty)
		if !captures {
			continue
		}
		if w := subBoardWeight(sb, weights); w > bestWeight {
			bestWeight = w
			best = move
		}
	}
	if bestWeight < 0 {
		return Move{}, false
	}
	return best, true
}

// captureCandidates lists legal moves that win their own sub-board.
func captureCandidates(s *GameState, player Player) []Move {
	scratch := s.Clone()
	var out []Move
	for _, move := range LegalMoves(&scratch) {
		scratch.Board.Set(move.Row, move.Col, CellFromPlayer(player))
		wins := checkSmallWinner(&scratch.Board, move.SubBoard()) == player
		scratch.Board.Set(move.Row, move.Col, CellEmpty)
		if wins {
			out = append(out, move)
		}
	}
	return out
}

// findSafeCapture returns the highest-weight sub-board-winning move that
// survives the safe-capture filter.
func findSafeCapture(s *GameState, player Player, cfg Config) (Move, bool) {
	candidates := captureCandidates(s, player)
	if len(candidates) == 0 {
		return Move{}, false
	}
	best := Move{}
	bestWeight := -1.0
	for _, move := range candidates {
		if !isCaptureSafe(s, move, player, cfg) {
			continue
		}
		if w := subBoardWeight(move.SubBoard(), cfg.Heuristics); w > bestWeight {
			bestWeight = w
			best = move
		}
	}
	if bestWeight < 0 {
		return Move{}, false
	}
	return best, true
}

// isCaptureSafe plays the capture and exhaustively checks every legal
// opponent reply. The capture is rejected if any reply wins the big board,
// captures a center or corner sub-board, or leaves the opponent with more
// meta-line threats than the configured tolerance.
func isCaptureSafe(s *GameState, move Move, player Player, cfg Config) bool {
	scratch := s.Clone()
	capRec := scratch.applyForSearch(move, player)
	defer scratch.undoForSearch(capRec)

	opponent := otherPlayer(player)
	for _, reply := range LegalMoves(&scratch) {
		rec := scratch.applyForSearch(reply, opponent)
		unsafe := CheckBigWinner(&scratch) == opponent
		if !unsafe {
			sb := reply.SubBoard()
			if statusOwner(scratch.Statuses[sb]) == opponent &&
				(isCenterSubBoard(sb) || isCornerSubBoard(sb)) {
				unsafe = true
			}
		}
		if !unsafe && metaThreatCount(&scratch, opponent) > cfg.AiSafeCaptureThreatMax {
			unsafe = true
		}
		scratch.undoForSearch(rec)
		if unsafe {
			return false
		}
	}
	return true
}

// metaThreatCount counts meta lines where owner holds two sub-boards and the
// third is still ongoing.
func metaThreatCount(s *GameState, owner Player) int {
	count := 0
	for _, line := range metaLines {
		owned := 0
		open := 0
		for _, sb := range line {
			switch {
			case statusOwner(s.Statuses[sb]) == owner:
				owned++
			case s.Statuses[sb] == SmallOngoing:
				open++
			}
		}
		if owned == 2 && open == 1 {
			count++
		}
	}
	return count
}
