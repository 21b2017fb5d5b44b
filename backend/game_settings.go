package main

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerAI
)

type GameSettings struct {
	XType       PlayerType `json:"-"`
	OType       PlayerType `json:"-"`
	XDifficulty Difficulty `json:"-"`
	ODifficulty Difficulty `json:"-"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		XType:       PlayerHuman,
		OType:       PlayerAI,
		XDifficulty: DifficultyHard,
		ODifficulty: DifficultyHard,
	}
}
