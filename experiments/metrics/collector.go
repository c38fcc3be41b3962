package metrics

import (
	"time"

	"tictactoe/game"
)

type MoveMetric struct {
	Step   int
	Player game.Owner
	Move   game.Move
}

type GameMetric struct {
	StartingPlayer game.Owner
	Winner         game.Winner
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Moves          []MoveMetric
}

// Collector builds the metric of a single game as it is played.
type Collector interface {
	Start(startingPlayer game.Owner)
	AddMove(player game.Owner, move game.Move)
	Complete(winner game.Winner) GameMetric
}

type collector struct {
	metric GameMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(startingPlayer game.Owner) {
	c.metric = GameMetric{
		StartingPlayer: startingPlayer,
		Winner:         game.Undecided,
		StartTime:      time.Now(),
	}
}

func (c *collector) AddMove(player game.Owner, move game.Move) {
	c.metric.TotalMoves++
	c.metric.Moves = append(c.metric.Moves, MoveMetric{
		Step:   c.metric.TotalMoves,
		Player: player,
		Move:   move,
	})
}

func (c *collector) Complete(winner game.Winner) GameMetric {
	c.metric.Winner = winner
	c.metric.EndTime = time.Now()
	c.metric.Duration = c.metric.EndTime.Sub(c.metric.StartTime)
	return c.metric
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that only reports the winner.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(game.Owner)                  {}
func (c *dummyCollector) AddMove(game.Owner, game.Move)     {}
func (c *dummyCollector) Complete(w game.Winner) GameMetric { return GameMetric{Winner: w} }
