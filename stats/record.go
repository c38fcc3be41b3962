// Package stats keeps the outcome counters recorded for a board.
package stats

import "fmt"

// Record counts how often a board was reached and how the games it appeared
// in ended. Counters only ever grow. The zero value is an unseen board.
type Record struct {
	seen   int
	wins   int
	draws  int
	losses int
}

func (r *Record) IncrementSeen()   { r.seen++ }
func (r *Record) IncrementWins()   { r.wins++ }
func (r *Record) IncrementDraws()  { r.draws++ }
func (r *Record) IncrementLosses() { r.losses++ }

func (r *Record) Seen() int   { return r.seen }
func (r *Record) Wins() int   { return r.wins }
func (r *Record) Draws() int  { return r.draws }
func (r *Record) Losses() int { return r.losses }

// PercentWin returns floor(100*wins/seen), or 100 for a board never seen so
// that unexplored boards look as good as possible.
func (r *Record) PercentWin() int {
	if r.seen == 0 {
		return 100
	}
	return 100 * r.wins / r.seen
}

func (r *Record) String() string {
	return fmt.Sprintf("seen %d, won %d, drew %d, lost %d (%d%% won)",
		r.seen, r.wins, r.draws, r.losses, r.PercentWin())
}
