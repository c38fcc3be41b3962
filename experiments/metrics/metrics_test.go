package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tictactoe/game"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	t.Run("recording moves in order", func(t *testing.T) {
		c := NewCollector()
		c.Start(game.PlayerTwo)
		c.AddMove(game.PlayerTwo, game.Move{Row: 1, Col: 1})
		c.AddMove(game.PlayerOne, game.Move{Row: 0, Col: 2})

		m := c.Complete(game.Draw)

		require.Equal(t, game.PlayerTwo, m.StartingPlayer)
		require.Equal(t, game.Draw, m.Winner)
		require.Equal(t, 2, m.TotalMoves)
		require.Equal(t, []MoveMetric{
			{Step: 1, Player: game.PlayerTwo, Move: game.Move{Row: 1, Col: 1}},
			{Step: 2, Player: game.PlayerOne, Move: game.Move{Row: 0, Col: 2}},
		}, m.Moves)
		require.False(t, m.EndTime.Before(m.StartTime))
		require.Equal(t, m.EndTime.Sub(m.StartTime), m.Duration)
	})

	t.Run("starting over", func(t *testing.T) {
		c := NewCollector()
		c.Start(game.PlayerOne)
		c.AddMove(game.PlayerOne, game.Move{})
		c.Complete(game.Undecided)

		c.Start(game.PlayerOne)
		m := c.Complete(game.Winner(game.PlayerOne))

		require.Equal(t, 0, m.TotalMoves, "Start should reset the previous game")
		require.Empty(t, m.Moves)
	})

	t.Run("dummy keeps only the winner", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(game.PlayerOne)
		c.AddMove(game.PlayerOne, game.Move{})

		require.Equal(t, GameMetric{Winner: game.Draw}, c.Complete(game.Draw))
	})
}

func TestWriter(t *testing.T) {
	base := t.TempDir()
	id := uuid.New()

	w, err := NewWriter(base, id)
	require.NoError(t, err)
	require.Equal(t, base, filepath.Dir(w.Dir()))
	require.True(t, strings.HasSuffix(w.Dir(), "-"+id.String()[:8]), "Directory %s should end with the short run id", w.Dir())

	t.Run("run info", func(t *testing.T) {
		start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		err := w.WriteRun(RunInfo{ID: id, StartTime: start, Games: 10, SmartSide: 2, Seed: 42, TableSize: 283})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "run.csv"))
		require.Equal(t, [][]string{
			{"id", "start_time", "games", "smart_side", "seed", "table_size"},
			{id.String(), "2024-03-01T12:00:00Z", "10", "2", "42", "283"},
		}, rows)
	})

	t.Run("one row per game after the header", func(t *testing.T) {
		records := []GameRecord{
			{ID: 1, SmartSide: game.PlayerOne, GameMetric: GameMetric{StartingPlayer: game.PlayerOne, Winner: game.Winner(game.PlayerOne), TotalMoves: 5}},
			{ID: 2, SmartSide: game.PlayerOne, GameMetric: GameMetric{StartingPlayer: game.PlayerOne, Winner: game.Draw, TotalMoves: 9}},
			{ID: 3, SmartSide: game.PlayerOne, GameMetric: GameMetric{StartingPlayer: game.PlayerOne, Winner: game.Winner(game.PlayerTwo), TotalMoves: 6}},
		}
		require.NoError(t, w.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, len(records)+1)
		require.Equal(t, "winner", rows[0][3])
		require.Equal(t, []string{"1", "X", "X", "player X", "5"}, rows[1][:5])
		require.Equal(t, "draw", rows[2][3])
		require.Equal(t, "player O", rows[3][3])
	})

	t.Run("moves", func(t *testing.T) {
		records := []MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: game.PlayerOne, Move: game.Move{Row: 2, Col: 0}}},
		}
		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, [][]string{
			{"game", "step", "player", "row", "col"},
			{"1", "1", "X", "2", "0"},
		}, rows)
	})

	t.Run("unwritable base directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0644))

		_, err := NewWriter(file, id)
		require.Error(t, err)
	})
}
