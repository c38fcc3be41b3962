package player

import (
	"fmt"
	"time"

	"tictactoe/game"

	"golang.org/x/exp/rand"
)

// Player takes turns on a shared board. Move must play exactly one legal move
// unless the game is already over.
type Player interface {
	fmt.Stringer
	NewGame(id game.Owner)
	Move(board *game.Board)
	EndGame(board *game.Board)
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
