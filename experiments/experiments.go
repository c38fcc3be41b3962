package experiments

import (
	"context"
	"fmt"
	"io"
	"time"

	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/player"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Games     int
	SmartSide int    // 1 moves first, 2 moves second
	Seed      uint64 // 0 seeds from the clock
	TableSize int
	OutDir    string // CSV output is skipped when empty
}

func (c Config) Validate() error {
	switch {
	case c.Games <= 0:
		return errors.Wrapf(ErrInvalidConfig, "games must be positive, got %d", c.Games)
	case c.SmartSide != 1 && c.SmartSide != 2:
		return errors.Wrapf(ErrInvalidConfig, "side must be 1 or 2, got %d", c.SmartSide)
	case c.TableSize < 2:
		return errors.Wrapf(ErrInvalidConfig, "table size must be at least 2, got %d", c.TableSize)
	}
	return nil
}

type Report struct {
	RunID      uuid.UUID
	Games      int
	SmartWins  int
	RandomWins int
	Draws      int

	Slots      int
	Entries    int
	Collisions int
	LoadFactor float64

	Favorite       game.Fingerprint
	HasFavorite    bool
	FavoriteWins   int
	FavoritePlayed int

	OutputDir string
}

// Run trains a smart player against a random one for cfg.Games games and
// reports how it did.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	info := metrics.RunInfo{
		ID:        uuid.New(),
		StartTime: time.Now(),
		Games:     cfg.Games,
		SmartSide: cfg.SmartSide,
		Seed:      seed,
		TableSize: cfg.TableSize,
	}

	side := game.Owner(cfg.SmartSide)
	smart := player.NewSmart(side, player.WithSeed(seed), player.WithTableSize(cfg.TableSize))
	random := player.NewRandom(rand.New(rand.NewSource(seed + 1)))

	log.Info().Msgf("starting run %s: %d games, %s plays %s", info.ID, cfg.Games, smart, side)

	report := &Report{RunID: info.ID, Games: cfg.Games}
	gameRecords := make([]metrics.GameRecord, 0, cfg.Games)
	moveRecords := []metrics.MoveRecord{}

	for i := 1; i <= cfg.Games; i++ {
		smart.NewGame(side)
		players := [2]player.Player{smart, random}
		if side == game.PlayerTwo {
			players = [2]player.Player{random, smart}
		}
		e := engine.NewLocal(players)

		winner, gameMetric, err := e.Run(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "game %d of %d", i, cfg.Games)
		}
		smart.EndGame(e.Board)

		switch {
		case winner.Is(side):
			report.SmartWins++
		case winner == game.Draw:
			report.Draws++
		default:
			report.RandomWins++
		}

		gameRecords = append(gameRecords, metrics.GameRecord{ID: i, SmartSide: side, GameMetric: gameMetric})
		for _, mm := range gameMetric.Moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i, MoveMetric: mm})
		}
		log.Debug().Msgf("completed game %d of %d with winner: %s", i, cfg.Games, winner)
	}

	report.Slots = smart.NumSlots()
	report.Entries = smart.NumEntries()
	report.Collisions = smart.NumCollisions()
	report.LoadFactor = smart.LoadFactor()
	report.Favorite, report.HasFavorite = smart.FavoriteOpening()
	report.FavoriteWins = smart.FavoriteWins()
	report.FavoritePlayed = smart.FavoritePlayed()
	smart.Dump()

	log.Info().
		Int("smart_wins", report.SmartWins).
		Int("random_wins", report.RandomWins).
		Int("draws", report.Draws).
		Int("entries", report.Entries).
		Msgf("completed run %s", info.ID)

	if cfg.OutDir != "" {
		dir, err := store(cfg.OutDir, info, gameRecords, moveRecords)
		if err != nil {
			return nil, err
		}
		report.OutputDir = dir
	}
	return report, nil
}

func store(baseDir string, info metrics.RunInfo, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(baseDir, info.ID)
	if err != nil {
		return "", errors.Wrap(err, "failed to create run writer")
	}
	if err := writer.WriteRun(info); err != nil {
		return "", errors.Wrap(err, "failed to store run info")
	}
	if err := writer.WriteGameRecords(games); err != nil {
		return "", errors.Wrap(err, "failed to store game records")
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", errors.Wrap(err, "failed to store move records")
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return writer.Dir(), nil
}

func percent(n, of int) int {
	if of == 0 {
		return 0
	}
	return 100 * n / of
}

// Print writes the final report.
func (r *Report) Print(w io.Writer) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("FINAL REPORT:\n")
	printf("The number of slots is: %d\n", r.Slots)
	printf("The number of entries is: %d\n", r.Entries)
	printf("The %% full is: %d\n", int(r.LoadFactor*100))
	printf("The number of collisions is: %d\n", r.Collisions)
	printf("\n")
	printf("Smart Player has won %d times, which is %d percent\n", r.SmartWins, percent(r.SmartWins, r.Games))
	printf("Random AI has won %d times, which is %d percent\n", r.RandomWins, percent(r.RandomWins, r.Games))
	printf("There were %d draws, which is %d percent\n", r.Draws, percent(r.Draws, r.Games))
	printf("\n")
	if r.HasFavorite {
		printf("My favorite first move is: \n\n%s\n", r.Favorite)
		printf("Won %d out of %d, which is %d%%\n", r.FavoriteWins, r.FavoritePlayed, percent(r.FavoriteWins, r.FavoritePlayed))
	} else {
		printf("No first move was played\n")
	}
	if r.OutputDir != "" {
		printf("\nRecords stored in %s\n", r.OutputDir)
	}
	return errors.Wrap(err, "failed to print report")
}
