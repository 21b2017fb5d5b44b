package main

import (
	"math/rand"
	"sort"
	"time"
)

const scoreInf = 1 << 30

// endgameSolver runs minimax with alpha-beta once the empty-cell count is low
// enough for deep search inside the time budget. The transposition table it
// holds is scoped to one AI session and cleared at new-game boundaries.
type endgameSolver struct {
	tt      *TranspositionTable
	rng     *rand.Rand
	cfg     Config
	weights HeuristicConfig
	hh      uint64
	stats   *SearchStats
}

func newEndgameSolver(tt *TranspositionTable, rng *rand.Rand, cfg Config, stats *SearchStats) *endgameSolver {
	return &endgameSolver{
		tt:      tt,
		rng:     rng,
		cfg:     cfg,
		weights: resolvedHeuristicConfig(cfg),
		hh:      heuristicHashFromConfig(cfg),
		stats:   stats,
	}
}

// bestMove evaluates every legal move with one recursive call each, keeping
// the extreme score for the mover. The root deadline aborts early and returns
// the best move found so far.
func (e *endgameSolver) bestMove(s *GameState, player Player) (Move, bool) {
	scratch := s.Clone()
	moves := LegalMoves(&scratch)
	if len(moves) == 0 {
		return Move{}, false
	}
	e.orderMoves(&scratch, moves)

	rootDeadline := time.Now().Add(time.Duration(e.cfg.AiEndgameRootBudgetMs) * time.Millisecond)
	nodeDeadline := time.Now().Add(time.Duration(e.cfg.AiEndgameNodeBudgetMs) * time.Millisecond)

	best := Move{}
	haveBest := false
	bestScore := 0
	for _, move := range moves {
		if haveBest && time.Now().After(rootDeadline) {
			break
		}
		rec := scratch.applyForSearch(move, player)
		score := e.minimax(&scratch, otherPlayer(player), e.cfg.AiEndgameDepth, -scoreInf, scoreInf, nodeDeadline)
		scratch.undoForSearch(rec)
		if !haveBest ||
			(player == PlayerX && score > bestScore) ||
			(player == PlayerO && score < bestScore) {
			haveBest = true
			bestScore = score
			best = move
		}
	}
	if !haveBest {
		best = moves[e.rng.Intn(len(moves))]
	}
	return best, true
}

// minimax maximizes for X and minimizes for O. Immediate wins are rewarded
// by remaining depth so faster wins beat slower ones.
func (e *endgameSolver) minimax(s *GameState, mover Player, depth, alpha, beta int, deadline time.Time) int {
	if e.stats != nil {
		e.stats.Nodes++
	}
	switch CheckBigWinner(s) {
	case PlayerX:
		return e.weights.WinScore + depth
	case PlayerO:
		return -(e.weights.WinScore + depth)
	}
	if allSubBoardsDecided(s) {
		return 0
	}
	if depth == 0 || time.Now().After(deadline) {
		// Leaf scores take the mover's perspective while interior nodes
		// maximize for X and minimize for O. Kept as-is; the endgame result
		// is dominated by the exact win/draw returns above.
		return EvaluateBoard(s, mover, e.weights)
	}

	key := s.Hash
	if e.stats != nil {
		e.stats.TTProbes++
	}
	if entry, ok := e.tt.Probe(key, e.hh); ok && entry.Depth >= depth {
		if e.stats != nil {
			e.stats.TTHits++
		}
		return int(entry.Score)
	}

	moves := LegalMoves(s)
	if len(moves) == 0 {
		return 0
	}
	e.orderMoves(s, moves)

	var best int
	if mover == PlayerX {
		best = -scoreInf
		for _, move := range moves {
			rec := s.applyForSearch(move, mover)
			value := e.minimax(s, PlayerO, depth-1, alpha, beta, deadline)
			s.undoForSearch(rec)
			if value > best {
				best = value
			}
			if value > alpha {
				alpha = value
			}
			if beta <= alpha {
				break
			}
		}
	} else {
		best = scoreInf
		for _, move := range moves {
			rec := s.applyForSearch(move, mover)
			value := e.minimax(s, PlayerX, depth-1, alpha, beta, deadline)
			s.undoForSearch(rec)
			if value < best {
				best = value
			}
			if value < beta {
				beta = value
			}
			if beta <= alpha {
				break
			}
		}
	}
	e.tt.Store(key, e.hh, depth, best)
	if e.stats != nil {
		e.stats.TTStores++
	}
	return best
}

// orderMoves sorts by static positional weight, descending. The ordering is
// reused unchanged for both movers; it only steers pruning, never the result.
func (e *endgameSolver) orderMoves(s *GameState, moves []Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return e.positionValue(s, moves[i]) > e.positionValue(s, moves[j])
	})
}

func (e *endgameSolver) positionValue(s *GameState, move Move) int {
	value := 0
	sb := move.SubBoard()
	switch {
	case isCenterSubBoard(sb):
		value += e.weights.PosCenterBoard
	case isCornerSubBoard(sb):
		value += e.weights.PosCornerBoard
	default:
		value += e.weights.PosEdgeBoard
	}
	if isCenterCell(move) {
		value += e.weights.PosCenterCell
	} else if isCornerCell(move) {
		value += e.weights.PosCornerCell
	}
	if s.Statuses[targetSubBoard(move.Row, move.Col)] != SmallOngoing {
		value += e.weights.PosFreeSend
	}
	return value
}
