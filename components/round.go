package components

import (
	"fmt"

	"github.com/yohamta/donburi"
)

type RoundResult int

const (
	RoundInProgress RoundResult = iota
	RoundWon
	RoundLost
)

func (r RoundResult) String() string {
	switch r {
	case RoundInProgress:
		return "InProgress"
	case RoundWon:
		return "Won"
	case RoundLost:
		return "Lost"
	default:
		return fmt.Sprintf("RoundResult(%d)", int(r))
	}
}

type RoundData struct {
	LevelIndex   int
	LevelName    string
	StartingAmmo int
	Ammo         int
	Score        int
	Result       RoundResult
	Stars        int // set once the round is won
}

var Round = donburi.NewComponentType[RoundData]()
