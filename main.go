package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"

	"tictactoe/experiments"
	"tictactoe/logger"
	"tictactoe/meta"

	"github.com/rs/zerolog/log"
)

func main() {
	games := flag.Int("games", envInt("GAMES", meta.GAMES), "Number of games to play")
	side := flag.Int("side", envInt("SMART_SIDE", meta.SMART_SIDE), "Seat of the smart player (1 moves first, 2 second)")
	seed := flag.Uint64("seed", uint64(envInt("SEED", 0)), "Random seed, 0 for a clock based seed")
	tableSize := flag.Int("table-size", envInt("TABLE_SIZE", meta.TABLE_SIZE), "Initial slots in the smart player's table")
	outDir := flag.String("out", envOrDefault("OUT_DIR", ""), "Directory for CSV records, empty to skip")
	logLevel := flag.String("log-level", envOrDefault("LOG_LEVEL", "info"), "Log level")
	flag.Parse()

	logger.Init(*logLevel, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := experiments.Run(ctx, experiments.Config{
		Games:     *games,
		SmartSide: *side,
		Seed:      *seed,
		TableSize: *tableSize,
		OutDir:    *outDir,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
	if err := report.Print(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to print report")
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(envOrDefault(key, strconv.Itoa(fallback)))
	if err != nil {
		log.Warn().Str("key", key).Msgf("ignoring non-numeric %s", key)
		return fallback
	}
	return v
}
