package main

type Player int

const (
	PlayerNone Player = 0
	PlayerX    Player = 1
	PlayerO    Player = -1
)

type SmallStatus uint8

const (
	SmallOngoing SmallStatus = iota
	SmallWonX
	SmallWonO
	SmallDraw
)

// anywhereBoard means the mover may play in any ongoing sub-board.
const anywhereBoard = -1

type GameStatus int

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusXWon
	StatusOWon
	StatusDraw
)

// GameState is the full rules-engine state. Board and Statuses are fixed
// arrays, so plain assignment copies the whole state.
type GameState struct {
	Board     Board
	Statuses  [subCount]SmallStatus
	NextBoard int // sub-board the mover is constrained to, or anywhereBoard
	ToMove    Player
	Hash      uint64
}

// NewGameState returns the empty starting position: X to move, no constraint.
func NewGameState() GameState {
	s := GameState{}
	s.Reset()
	return s
}

func (s *GameState) Reset() {
	s.Board = Board{}
	s.Statuses = [subCount]SmallStatus{}
	s.NextBoard = anywhereBoard
	s.ToMove = PlayerX
	s.Hash = ComputeHash(s)
}

func (s GameState) Clone() GameState {
	return s
}

func otherPlayer(player Player) Player {
	return -player
}

func statusOwner(status SmallStatus) Player {
	switch status {
	case SmallWonX:
		return PlayerX
	case SmallWonO:
		return PlayerO
	default:
		return PlayerNone
	}
}

func statusForWinner(winner Player) SmallStatus {
	if winner == PlayerX {
		return SmallWonX
	}
	return SmallWonO
}

func (p Player) String() string {
	switch p {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "none"
	}
}

func playerToInt(p Player) int {
	return int(p)
}

// undoRecord captures everything applyForSearch changes, so search code can
// roll a single scratch state forward and back instead of copying the board.
type undoRecord struct {
	move          Move
	player        Player
	prevStatus    SmallStatus
	prevNextBoard int
	prevHash      uint64
}

// applyForSearch writes the mark, updates the affected sub-board status, the
// constraint and the incremental hash. Legality is the caller's problem.
func (s *GameState) applyForSearch(move Move, player Player) undoRecord {
	sb := move.SubBoard()
	rec := undoRecord{
		move:          move,
		player:        player,
		prevStatus:    s.Statuses[sb],
		prevNextBoard: s.NextBoard,
		prevHash:      s.Hash,
	}
	s.Board.Set(move.Row, move.Col, CellFromPlayer(player))
	s.Hash ^= zobristCell(move.Row, move.Col, player)
	s.refreshSubBoardStatus(sb)
	if s.Statuses[sb] != rec.prevStatus {
		s.Hash ^= zobristStatus(sb, rec.prevStatus)
		s.Hash ^= zobristStatus(sb, s.Statuses[sb])
	}
	target := targetSubBoard(move.Row, move.Col)
	if s.Statuses[target] != SmallOngoing {
		target = anywhereBoard
	}
	if target != s.NextBoard {
		s.Hash ^= zobristConstraint(s.NextBoard)
		s.Hash ^= zobristConstraint(target)
	}
	s.NextBoard = target
	s.ToMove = otherPlayer(player)
	return rec
}

func (s *GameState) undoForSearch(rec undoRecord) {
	sb := rec.move.SubBoard()
	s.Board.Set(rec.move.Row, rec.move.Col, CellEmpty)
	s.Statuses[sb] = rec.prevStatus
	s.NextBoard = rec.prevNextBoard
	s.Hash = rec.prevHash
	s.ToMove = rec.player
}

// refreshSubBoardStatus recomputes the status of one sub-board. Transitions
// are monotonic: a decided board never goes back to ongoing.
func (s *GameState) refreshSubBoardStatus(sb int) {
	if s.Statuses[sb] != SmallOngoing {
		return
	}
	if winner := checkSmallWinner(&s.Board, sb); winner != PlayerNone {
		s.Statuses[sb] = statusForWinner(winner)
		return
	}
	baseRow, baseCol := subBoardOrigin(sb)
	for r := baseRow; r < baseRow+subSpan; r++ {
		for c := baseCol; c < baseCol+subSpan; c++ {
			if s.Board.IsEmpty(r, c) {
				return
			}
		}
	}
	s.Statuses[sb] = SmallDraw
}
