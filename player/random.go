package player

import (
	"tictactoe/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random empty cell.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random player drawing from rng, or from a time seeded
// source when rng is nil.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = newRand(0)
	}
	return &Random{rng: rng}
}

func (r *Random) NewGame(game.Owner) {}

func (r *Random) Move(board *game.Board) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return
	}
	m := moves[r.rng.Intn(len(moves))]
	board.Play(m.Row, m.Col)
}

func (r *Random) EndGame(*game.Board) {}

func (r *Random) String() string { return "Random AI" }
