package player

import (
	"fmt"

	"tictactoe/game"
	"tictactoe/hashtable"
	"tictactoe/meta"
	"tictactoe/stats"
	"tictactoe/utils"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var ErrUnknownState = errors.New("state was never recorded")

type SmartOption func(s *Smart)

// WithRand sets the source used to break ties between equally rated moves.
func WithRand(rng *rand.Rand) SmartOption {
	return func(s *Smart) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithSeed(seed uint64) SmartOption {
	return func(s *Smart) {
		s.rng = newRand(seed)
	}
}

func WithTableSize(size int) SmartOption {
	return func(s *Smart) {
		if size > 0 {
			s.tableSize = size
		}
	}
}

// Smart learns across games which boards lead to wins. Every board it leaves
// after moving is recorded in a session table; at the end of a game each of
// them is credited with the outcome. It always moves to the successor with the
// best win percentage, treating unseen boards as certain wins.
type Smart struct {
	id        game.Owner
	tableSize int
	table     *hashtable.Table[game.Fingerprint, *stats.Record]
	visited   []game.Fingerprint
	openings  []game.Fingerprint
	rng       *rand.Rand
}

func NewSmart(id game.Owner, options ...SmartOption) *Smart {
	s := &Smart{
		id:        id,
		tableSize: meta.TABLE_SIZE,
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = newRand(0)
	}
	s.table = hashtable.New[game.Fingerprint, *stats.Record](s.tableSize)
	return s
}

func (s *Smart) NewGame(id game.Owner) {
	s.id = id
	s.visited = s.visited[:0]
}

func (s *Smart) Move(board *game.Board) {
	successors := board.Successors()
	if len(successors) == 0 {
		return
	}

	for _, succ := range successors {
		s.record(succ.Fingerprint)
	}
	best := utils.ArgMax(successors, func(succ game.Successor) int {
		r, _ := s.table.Get(succ.Fingerprint)
		return r.PercentWin()
	})
	choice := successors[best[0]]
	if len(best) > 1 {
		choice = successors[best[s.rng.Intn(len(best))]]
	}

	opening := board.NumEmpty() > meta.OPENING_EMPTY
	if !board.Play(choice.Move.Row, choice.Move.Col) {
		panic(fmt.Sprintf("smart player chose illegal move %+v", choice.Move))
	}

	fp := board.Fingerprint()
	s.visited = append(s.visited, fp)
	if opening && !utils.Contains(s.openings, fp) {
		s.openings = append(s.openings, fp)
	}
	s.record(fp).IncrementSeen()
}

// EndGame credits every board visited this game with the outcome from the
// player's point of view. A board without a result counts as a loss.
func (s *Smart) EndGame(board *game.Board) {
	winner := board.Winner()
	for _, fp := range s.visited {
		r := s.record(fp)
		switch {
		case winner.Is(s.id):
			r.IncrementWins()
		case winner == game.Draw:
			r.IncrementDraws()
		default:
			r.IncrementLosses()
		}
	}
	log.Debug().
		Str("winner", winner.String()).
		Int("visited", len(s.visited)).
		Int("entries", s.table.NumEntries()).
		Msg("smart player credited game")
	s.visited = s.visited[:0]
}

// record returns the stored record for fp, storing a fresh one if absent.
func (s *Smart) record(fp game.Fingerprint) *stats.Record {
	if r, ok := s.table.Get(fp); ok {
		return r
	}
	r := &stats.Record{}
	s.table.Put(fp, r)
	return r
}

func (s *Smart) PlayerID() game.Owner { return s.id }

func (s *Smart) NumSlots() int      { return s.table.NumSlots() }
func (s *Smart) NumEntries() int    { return s.table.NumEntries() }
func (s *Smart) NumCollisions() int { return s.table.NumCollisions() }

func (s *Smart) LoadFactor() float64 { return s.table.LoadFactor() }

// Lookup returns the record stored for fp.
func (s *Smart) Lookup(fp game.Fingerprint) (stats.Record, bool) {
	r, ok := s.table.Get(fp)
	if !ok {
		return stats.Record{}, false
	}
	return *r, true
}

func (s *Smart) TimesSeen(fp game.Fingerprint) (int, error) {
	r, ok := s.table.Get(fp)
	if !ok {
		return 0, errors.Wrapf(ErrUnknownState, "fingerprint %d", int(fp))
	}
	return r.Seen(), nil
}

// FavoriteOpening returns the opening board reached most often. Ties go to the
// board listed first.
func (s *Smart) FavoriteOpening() (game.Fingerprint, bool) {
	if len(s.openings) == 0 {
		return 0, false
	}
	best := utils.ArgMax(s.openings, func(fp game.Fingerprint) int {
		r, _ := s.table.Get(fp)
		return r.Seen()
	})
	return s.openings[best[0]], true
}

func (s *Smart) FavoriteWins() int {
	fp, ok := s.FavoriteOpening()
	if !ok {
		return 0
	}
	r, _ := s.table.Get(fp)
	return r.Wins()
}

func (s *Smart) FavoritePlayed() int {
	fp, ok := s.FavoriteOpening()
	if !ok {
		return 0
	}
	r, _ := s.table.Get(fp)
	return r.Seen()
}

func (s *Smart) Visited() []game.Fingerprint {
	return append([]game.Fingerprint(nil), s.visited...)
}

func (s *Smart) Openings() []game.Fingerprint {
	return append([]game.Fingerprint(nil), s.openings...)
}

// Dump logs every stored record at trace level.
func (s *Smart) Dump() {
	s.table.Range(func(fp game.Fingerprint, r *stats.Record) bool {
		log.Trace().Int("fingerprint", int(fp)).Msgf("%s", r)
		return true
	})
}

func (s *Smart) String() string { return "Smart Player" }
