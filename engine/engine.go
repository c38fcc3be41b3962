package engine

import (
	"context"

	"tictactoe/experiments/metrics"
	"tictactoe/game"

	"github.com/pkg/errors"
)

// ErrStalled is returned when a player does not make exactly one move on its
// turn.
var ErrStalled = errors.New("player did not make exactly one move")

type Engine interface {
	// Run plays a game until it is won or drawn, or ctx is cancelled.
	Run(ctx context.Context) (game.Winner, metrics.GameMetric, error)
}
