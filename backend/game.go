package main

import (
	"log"
	"time"
)

type Game struct {
	settings  GameSettings
	state     GameState
	status    GameStatus
	history   MoveHistory
	xPlayer   IPlayer
	oPlayer   IPlayer
	turnStart time.Time
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.settings = settings
	g.state.Reset()
	g.status = StatusNotStarted
	g.history.Clear()
	g.createPlayers()
	g.turnStart = time.Now()
}

func (g *Game) Start() {
	if g.status == StatusNotStarted {
		g.status = StatusRunning
		g.turnStart = time.Now()
		g.logMatchup()
	}
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) Status() GameStatus {
	return g.status
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

func (g *Game) TryApplyMove(move Move) (bool, string) {
	if g.status != StatusRunning {
		return false, "game not running"
	}
	player := g.currentPlayer()
	isAiMove := player != nil && !player.IsHuman()
	mover := g.state.ToMove
	if err := ApplyMove(&g.state, move, mover); err != nil {
		return false, err.Error()
	}
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	g.history.Push(HistoryEntry{Move: move, Player: mover, ElapsedMs: elapsedMs, IsAi: isAiMove})

	if winner := CheckBigWinner(&g.state); winner != PlayerNone {
		if winner == PlayerX {
			g.status = StatusXWon
		} else {
			g.status = StatusOWon
		}
		log.Printf("[game] %s wins after %d moves", winner, g.history.Size())
		return true, ""
	}
	if allSubBoardsDecided(&g.state) {
		g.status = StatusDraw
		log.Printf("[game] draw after %d moves", g.history.Size())
		return true, ""
	}
	g.turnStart = time.Now()
	return true, ""
}

func (g *Game) Tick() bool {
	if g.status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			applied, _ := g.TryApplyMove(human.TakePendingMove())
			return applied
		}
		return false
	}
	ai, ok := player.(*AIPlayer)
	if !ok {
		move, ok := player.ChooseMove(g.state.Clone())
		if !ok {
			return false
		}
		applied, _ := g.TryApplyMove(move)
		return applied
	}
	if ai.HasMoveReady() {
		move, ok := ai.TakeMove()
		if !ok {
			return false
		}
		applied, _ := g.TryApplyMove(move)
		return applied
	}
	if !ai.IsThinking() {
		ai.StartThinking(g.state.Clone())
	}
	return false
}

func (g *Game) SubmitHumanMove(move Move) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) AiThinking() bool {
	ai, ok := g.currentPlayer().(*AIPlayer)
	return ok && ai.IsThinking()
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerFor(g.state.ToMove)
}

func (g *Game) playerFor(player Player) IPlayer {
	if player == PlayerX {
		return g.xPlayer
	}
	return g.oPlayer
}

func (g *Game) createPlayers() {
	if g.settings.XType == PlayerHuman {
		g.xPlayer = NewHumanPlayer()
	} else {
		g.xPlayer = NewAIPlayer(g.settings.XDifficulty)
	}
	if g.settings.OType == PlayerHuman {
		g.oPlayer = NewHumanPlayer()
	} else {
		g.oPlayer = NewAIPlayer(g.settings.ODifficulty)
	}
}

// ResetForConfigChange drops AI search caches so stale scores from the old
// heuristic weights cannot leak into the next search.
func (g *Game) ResetForConfigChange() {
	if ai, ok := g.xPlayer.(*AIPlayer); ok {
		ai.ResetForNewGame()
	}
	if ai, ok := g.oPlayer.(*AIPlayer); ok {
		ai.ResetForNewGame()
	}
}

func (g *Game) CacheCount() int {
	total := 0
	if ai, ok := g.xPlayer.(*AIPlayer); ok {
		total += ai.CacheCount()
	}
	if ai, ok := g.oPlayer.(*AIPlayer); ok {
		total += ai.CacheCount()
	}
	return total
}

func (g *Game) CacheCapacity() int {
	total := 0
	if ai, ok := g.xPlayer.(*AIPlayer); ok {
		total += ai.CacheCapacity()
	}
	if ai, ok := g.oPlayer.(*AIPlayer); ok {
		total += ai.CacheCapacity()
	}
	return total
}

func (g *Game) logMatchup() {
	label := func(t PlayerType, d Difficulty) string {
		if t == PlayerAI {
			return "AI(" + d.String() + ")"
		}
		return "Human"
	}
	log.Printf("[game] X (%s) vs O (%s)",
		label(g.settings.XType, g.settings.XDifficulty),
		label(g.settings.OType, g.settings.ODifficulty))
}
