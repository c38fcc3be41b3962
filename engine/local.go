package engine

import (
	"context"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/player"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Local plays two in-process players against each other on a fresh board.
// Players[0] moves first.
type Local struct {
	Board   *game.Board
	Players [2]player.Player
	metrics metrics.Collector
}

type Option func(e *Local)

// WithCollector replaces the default collector.
func WithCollector(c metrics.Collector) Option {
	return func(e *Local) {
		if c != nil {
			e.metrics = c
		}
	}
}

func NewLocal(players [2]player.Player, options ...Option) *Local {
	if players[0] == nil || players[1] == nil {
		panic("need two players")
	}
	e := &Local{
		Board:   game.NewBoard(),
		Players: players,
		metrics: metrics.NewCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the board is over. The board is left in
// place so players can be credited afterwards.
func (e *Local) Run(ctx context.Context) (game.Winner, metrics.GameMetric, error) {
	e.metrics.Start(game.PlayerOne)
	log.Debug().Msgf("%s is starting", e.Players[0])

	for !e.Board.IsOver() {
		if err := ctx.Err(); err != nil {
			return game.Undecided, e.metrics.Complete(game.Undecided), errors.Wrap(err, "game interrupted")
		}

		mover := e.Board.ToMove()
		p := e.Players[mover-1]
		turn := e.Board.TurnNum()

		p.Move(e.Board)

		if e.Board.TurnNum() != turn+1 {
			return game.Undecided, e.metrics.Complete(game.Undecided),
				errors.Wrapf(ErrStalled, "%s on turn %d", p, turn)
		}
		move, _ := e.Board.LastMove()
		e.metrics.AddMove(mover, move)
	}

	winner := e.Board.Winner()
	log.Debug().
		Str("winner", winner.String()).
		Int("moves", e.Board.TurnNum()-1).
		Msgf("game over\n%s", e.Board)
	return winner, e.metrics.Complete(winner), nil
}
