package player

import (
	"testing"

	"tictactoe/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRandom(t *testing.T) {
	t.Run("filling the board one legal move at a time", func(t *testing.T) {
		r := NewRandom(rand.New(rand.NewSource(42)))
		board := game.NewBoard()

		for turn := 1; !board.IsOver(); turn++ {
			empty := board.NumEmpty()
			r.Move(board)
			require.Equal(t, empty-1, board.NumEmpty(), "Turn %d should fill exactly one cell", turn)
		}
		require.NotEqual(t, game.Undecided, board.Winner())
	})

	t.Run("seeded sources repeat", func(t *testing.T) {
		play := func() string {
			r := NewRandom(rand.New(rand.NewSource(7)))
			board := game.NewBoard()
			for !board.IsOver() {
				r.Move(board)
			}
			return board.String()
		}

		require.Equal(t, play(), play())
	})

	t.Run("finished board is left alone", func(t *testing.T) {
		r := NewRandom(nil)
		board := game.NewBoard()
		for _, m := range []game.Move{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 0, Col: 2}} {
			require.True(t, board.Play(m.Row, m.Col))
		}

		r.Move(board)

		require.Equal(t, 4, board.NumEmpty())
	})

	require.Equal(t, "Random AI", NewRandom(nil).String())
}
