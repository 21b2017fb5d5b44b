package main

import (
	"math"
	"time"
)

// searchNode is an ephemeral MCTS tree node, owned by one search invocation.
// player is the side to move at this node; children keep first-generated
// order so visit-count ties resolve deterministically.
type searchNode struct {
	move     Move
	player   Player
	prior    float64
	visits   int
	total    float64
	mean     float64
	children []*searchNode
}

type mctsBudget struct {
	timeLimit   time.Duration
	maxPlayouts int
}

// mctsSearch runs PUCT-selected Monte-Carlo tree search from the given
// position. It never mutates s; all simulation happens on one scratch state
// via apply/undo. Returns false only when the position has no legal moves.
func mctsSearch(s *GameState, player Player, budget mctsBudget, cfg Config, stats *SearchStats) (Move, bool) {
	weights := resolvedHeuristicConfig(cfg)
	scratch := s.Clone()

	root := &searchNode{player: player, prior: 1.0}
	rootMoves, rootPriors := legalWithPriors(&scratch, rootMoveBuf(), weights)
	if len(rootMoves) == 0 {
		return Move{}, false
	}
	for i, move := range rootMoves {
		root.children = append(root.children, &searchNode{
			move:   move,
			player: otherPlayer(player),
			prior:  rootPriors[i],
		})
	}

	deadline := time.Now().Add(budget.timeLimit)
	path := make([]*searchNode, 0, cellCount)
	undos := make([]undoRecord, 0, cellCount)
	moveBuf := make([]Move, 0, cellCount)

	playouts := 0
	for playouts < budget.maxPlayouts && time.Now().Before(deadline) {
		playouts++
		node := root
		path = append(path[:0], root)
		undos = undos[:0]

		// value starts from the root mover's perspective and flips sign per
		// ply during backpropagation, negamax style.
		var value float64
		terminal := false

		// Selection: descend by PUCT until a leaf or a terminal position.
		for len(node.children) > 0 {
			mover := node.player
			node = puctSelect(node, weights.MctsCPuct)
			undos = append(undos, scratch.applyForSearch(node.move, mover))
			path = append(path, node)
			if winner := CheckBigWinner(&scratch); winner != PlayerNone {
				value = terminalValue(winner, player)
				terminal = true
				break
			}
			moveBuf = AppendLegalMoves(&scratch, moveBuf)
			if len(moveBuf) == 0 {
				value = 0
				terminal = true
				break
			}
		}

		if !terminal {
			// Expansion + heuristic bootstrap at the leaf.
			moves, priors := legalWithPriors(&scratch, moveBuf, weights)
			if len(moves) == 0 {
				value = 0
			} else {
				for i, move := range moves {
					node.children = append(node.children, &searchNode{
						move:   move,
						player: otherPlayer(node.player),
						prior:  priors[i],
					})
				}
				score := EvaluateBoard(&scratch, player, weights)
				value = math.Tanh(float64(score) / weights.MctsValueScale)
			}
		}

		// Backpropagation, negamax convention: the value flips sign each
		// ply walking back toward the root.
		v := value
		for i := len(path) - 1; i >= 0; i-- {
			n := path[i]
			n.visits++
			n.total += v
			n.mean = n.total / float64(n.visits)
			v = -v
		}

		for i := len(undos) - 1; i >= 0; i-- {
			scratch.undoForSearch(undos[i])
		}
	}

	if stats != nil {
		stats.Playouts += playouts
	}

	// Decision: most-visited root child, first-generated wins ties.
	best := root.children[0]
	for _, child := range root.children[1:] {
		if child.visits > best.visits {
			best = child
		}
	}
	return best.move, true
}

func puctSelect(node *searchNode, cPuct float64) *searchNode {
	sqrtN := math.Sqrt(float64(node.visits) + 1)
	best := math.Inf(-1)
	var chosen *searchNode
	for _, child := range node.children {
		u := child.mean + cPuct*child.prior*sqrtN/(1+float64(child.visits))
		if u > best {
			best = u
			chosen = child
		}
	}
	return chosen
}

func terminalValue(winner, perspective Player) float64 {
	switch winner {
	case perspective:
		return 1
	case -perspective:
		return -1
	default:
		return 0
	}
}

// legalWithPriors generates legal moves with positional priors normalized to
// sum to one. A move sending the opponent to a decided sub-board grants them
// anywhere-next freedom, which the prior rewards rather than penalizes.
func legalWithPriors(s *GameState, buf []Move, weights HeuristicConfig) ([]Move, []float64) {
	moves := AppendLegalMoves(s, buf)
	if len(moves) == 0 {
		return moves, nil
	}
	priors := make([]float64, len(moves))
	total := 0.0
	for i, move := range moves {
		w := weights.PriorBase
		if isCenterSubBoard(move.SubBoard()) {
			w += weights.PriorCenterBoard
		}
		if isCenterCell(move) {
			w += weights.PriorCenterCell
		} else if isCornerCell(move) {
			w += weights.PriorCornerCell
		}
		target := targetSubBoard(move.Row, move.Col)
		if s.Statuses[target] == SmallOngoing {
			w += weights.PriorOpenTarget
		} else {
			w += weights.PriorFreeSend
		}
		priors[i] = w
		total += w
	}
	if total <= 0 {
		total = 1
	}
	for i := range priors {
		priors[i] /= total
	}
	return moves, priors
}

func rootMoveBuf() []Move {
	return make([]Move, 0, cellCount)
}
