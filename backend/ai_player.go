package main

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

func ParseDifficulty(name string) (Difficulty, error) {
	switch name {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return DifficultyMedium, fmt.Errorf("unknown difficulty %q", name)
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "medium"
	}
}

type SearchStats struct {
	Start    time.Time
	Playouts int
	Nodes    int
	TTProbes int
	TTHits   int
	TTStores int
}

// MoveSelector is the single capability every difficulty implements. The
// second return is false only on terminal positions with no legal move.
type MoveSelector interface {
	SelectMove(s *GameState, player Player) (Move, bool)
}

func selectorFor(difficulty Difficulty, cfg Config, rng *rand.Rand, tt *TranspositionTable) MoveSelector {
	switch difficulty {
	case DifficultyEasy:
		return &easySelector{cfg: cfg, rng: rng}
	case DifficultyHard:
		return &hardSelector{cfg: cfg, rng: rng, tt: tt}
	default:
		return &mediumSelector{cfg: cfg, rng: rng}
	}
}

// AIMove is the engine-level entry point: compute the next move for player
// under the given wall-clock budget. A zero budget uses the configured
// defaults. ok == false means the position is terminal (NoMove).
func AIMove(s *GameState, player Player, difficulty Difficulty, timeBudget time.Duration) (Move, bool) {
	cfg := GetConfig()
	if timeBudget > 0 {
		ms := int(timeBudget.Milliseconds())
		if ms < 1 {
			ms = 1
		}
		cfg.AiMctsTimeBudgetMs = ms
		cfg.AiMediumTimeBudgetMs = ms
		cfg.AiEndgameRootBudgetMs = ms
		cfg.AiEndgameNodeBudgetMs = ms * 9 / 10
		if cfg.AiEndgameNodeBudgetMs < 1 {
			cfg.AiEndgameNodeBudgetMs = 1
		}
	}
	rng := newSeededRand(cfg.AiSeed)
	tt := NewTranspositionTable(uint64(cfg.AiTtSize), cfg.AiTtBuckets)
	state := s.Clone()
	return selectorFor(difficulty, cfg, rng, tt).SelectMove(&state, player)
}

func newSeededRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// easySelector: with configured probability run a one-ply small-board
// win/block scan, otherwise (and as final fallback) play a random legal move.
type easySelector struct {
	cfg Config
	rng *rand.Rand
}

func (e *easySelector) SelectMove(s *GameState, player Player) (Move, bool) {
	moves := LegalMoves(s)
	if len(moves) == 0 {
		return Move{}, false
	}
	if e.rng.Float64() < e.cfg.AiEasyTacticProb {
		if move, ok := smallBoardTactic(s, moves, player); ok {
			return move, true
		}
	}
	return moves[e.rng.Intn(len(moves))], true
}

// smallBoardTactic returns the first legal move that wins a sub-board, then
// the first that blocks the opponent from winning one.
func smallBoardTactic(s *GameState, moves []Move, player Player) (Move, bool) {
	scratch := s.Clone()
	for _, move := range moves {
		scratch.Board.Set(move.Row, move.Col, CellFromPlayer(player))
		wins := checkSmallWinner(&scratch.Board, move.SubBoard()) == player
		scratch.Board.Set(move.Row, move.Col, CellEmpty)
		if wins {
			return move, true
		}
	}
	opponent := otherPlayer(player)
	for _, move := range moves {
		scratch.Board.Set(move.Row, move.Col, CellFromPlayer(opponent))
		wins := checkSmallWinner(&scratch.Board, move.SubBoard()) == opponent
		scratch.Board.Set(move.Row, move.Col, CellEmpty)
		if wins {
			return move, true
		}
	}
	return Move{}, false
}

// mediumSelector: tactical win/block, then MCTS on a reduced budget. Never
// switches to the endgame solver regardless of phase.
type mediumSelector struct {
	cfg Config
	rng *rand.Rand
}

func (m *mediumSelector) SelectMove(s *GameState, player Player) (Move, bool) {
	moves := LegalMoves(s)
	if len(moves) == 0 {
		return Move{}, false
	}
	if move, ok := findImmediateWin(s, player); ok {
		return move, true
	}
	if move, ok := findCriticalBlock(s, player, resolvedHeuristicConfig(m.cfg)); ok {
		return move, true
	}
	stats := &SearchStats{Start: time.Now()}
	budget := mctsBudget{
		timeLimit:   time.Duration(m.cfg.AiMediumTimeBudgetMs) * time.Millisecond,
		maxPlayouts: m.cfg.AiMediumMaxPlayouts,
	}
	move, ok := mctsSearch(s, player, budget, m.cfg, stats)
	if m.cfg.AiLogSearchStats {
		logSearchStats("medium", stats)
	}
	if !ok {
		return moves[m.rng.Intn(len(moves))], true
	}
	return move, true
}

// hardSelector: opening book, tactical layer, safe-capture filter, then MCTS
// while the position is open and the endgame solver once the empty-cell count
// drops below the phase threshold.
type hardSelector struct {
	cfg Config
	rng *rand.Rand
	tt  *TranspositionTable
}

func (h *hardSelector) SelectMove(s *GameState, player Player) (Move, bool) {
	moves := LegalMoves(s)
	if len(moves) == 0 {
		return Move{}, false
	}
	if move, ok := openingMove(s, h.cfg, h.rng); ok {
		return move, true
	}
	if move, ok := findImmediateWin(s, player); ok {
		return move, true
	}
	if move, ok := findCriticalBlock(s, player, resolvedHeuristicConfig(h.cfg)); ok {
		return move, true
	}
	if move, ok := findSafeCapture(s, player, h.cfg); ok {
		return move, true
	}

	stats := &SearchStats{Start: time.Now()}
	empties := s.Board.CountEmpty()
	if empties > h.cfg.AiEndgameEmpties {
		budget := mctsBudget{
			timeLimit:   time.Duration(h.cfg.AiMctsTimeBudgetMs) * time.Millisecond,
			maxPlayouts: h.cfg.AiMctsMaxPlayouts,
		}
		move, ok := mctsSearch(s, player, budget, h.cfg, stats)
		if h.cfg.AiLogSearchStats {
			logSearchStats("mcts", stats)
		}
		if ok {
			return move, true
		}
		return moves[h.rng.Intn(len(moves))], true
	}

	h.tt.NextGeneration()
	solver := newEndgameSolver(h.tt, h.rng, h.cfg, stats)
	move, ok := solver.bestMove(s, player)
	if h.cfg.AiLogSearchStats {
		logSearchStats("endgame", stats)
	}
	if !ok {
		return moves[h.rng.Intn(len(moves))], true
	}
	return move, true
}

func logSearchStats(tag string, stats *SearchStats) {
	if stats == nil {
		return
	}
	elapsed := time.Duration(0)
	if !stats.Start.IsZero() {
		elapsed = time.Since(stats.Start)
	}
	ttHitRate := 0.0
	if stats.TTProbes > 0 {
		ttHitRate = float64(stats.TTHits) * 100.0 / float64(stats.TTProbes)
	}
	nps := 0.0
	if elapsed > 0 {
		nps = float64(stats.Nodes) / elapsed.Seconds()
	}
	fmt.Printf("[ai:%s] t=%dms playouts=%d nodes=%d nps=%.0f tt_probe=%d tt_hit=%d tt_hit_rate=%.1f%% tt_store=%d\n",
		tag, elapsed.Milliseconds(), stats.Playouts, stats.Nodes, nps,
		stats.TTProbes, stats.TTHits, ttHitRate, stats.TTStores)
}

// AIPlayer owns one AI session: a difficulty, a seeded generator and a
// transposition table scoped to this game. Thinking runs on a worker
// goroutine so the session tick loop never blocks on a search.
type AIPlayer struct {
	difficulty Difficulty
	rng        *rand.Rand
	tt         *TranspositionTable

	moveMutex  sync.Mutex
	workerDone chan struct{}
	thinking   atomic.Bool
	moveReady  atomic.Bool
	readyMove  Move
	readyOk    bool
}

func NewAIPlayer(difficulty Difficulty) *AIPlayer {
	cfg := GetConfig()
	return &AIPlayer{
		difficulty: difficulty,
		rng:        newSeededRand(cfg.AiSeed),
		tt:         NewTranspositionTable(uint64(cfg.AiTtSize), cfg.AiTtBuckets),
	}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

func (a *AIPlayer) Difficulty() Difficulty {
	return a.difficulty
}

// ChooseMove computes the next move synchronously.
func (a *AIPlayer) ChooseMove(state GameState) (Move, bool) {
	cfg := GetConfig()
	return selectorFor(a.difficulty, cfg, a.rng, a.tt).SelectMove(&state, state.ToMove)
}

func (a *AIPlayer) StartThinking(state GameState) {
	if a.thinking.Load() {
		return
	}
	if a.workerDone != nil {
		<-a.workerDone
	}
	a.thinking.Store(true)
	a.moveReady.Store(false)

	done := make(chan struct{})
	a.workerDone = done
	go func() {
		defer close(done)
		move, ok := a.ChooseMove(state)
		a.moveMutex.Lock()
		a.readyMove = move
		a.readyOk = ok
		a.moveMutex.Unlock()
		a.moveReady.Store(true)
		a.thinking.Store(false)
	}()
}

func (a *AIPlayer) IsThinking() bool {
	return a.thinking.Load()
}

func (a *AIPlayer) HasMoveReady() bool {
	return a.moveReady.Load()
}

func (a *AIPlayer) TakeMove() (Move, bool) {
	a.moveMutex.Lock()
	defer a.moveMutex.Unlock()
	a.moveReady.Store(false)
	return a.readyMove, a.readyOk
}

// ResetForNewGame drops all cached search state. Entries must never survive
// into an unrelated game.
func (a *AIPlayer) ResetForNewGame() {
	a.tt.Clear()
}

func (a *AIPlayer) CacheCount() int {
	return a.tt.Count()
}

func (a *AIPlayer) CacheCapacity() int {
	return a.tt.Capacity()
}
