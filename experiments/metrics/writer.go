package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"tictactoe/game"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const dirTimeFormat = "20060102T150405Z"

// RunInfo describes one training run.
type RunInfo struct {
	ID        uuid.UUID
	StartTime time.Time
	Games     int
	SmartSide int
	Seed      uint64
	TableSize int
}

type GameRecord struct {
	ID        int
	SmartSide game.Owner
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	dir string
}

// NewWriter creates <baseDir>/<UTC timestamp>-<short run id> to hold the CSV
// files of one run.
func NewWriter(baseDir string, runID uuid.UUID) (*Writer, error) {
	name := time.Now().UTC().Format(dirTimeFormat) + "-" + runID.String()[:8]
	dir := filepath.Join(baseDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}
	return &Writer{dir: dir}, nil
}

func (w *Writer) Dir() string { return w.dir }

func (w *Writer) WriteRun(info RunInfo) error {
	header := []string{"id", "start_time", "games", "smart_side", "seed", "table_size"}
	row := []string{
		info.ID.String(),
		info.StartTime.UTC().Format(time.RFC3339),
		strconv.Itoa(info.Games),
		strconv.Itoa(info.SmartSide),
		strconv.FormatUint(info.Seed, 10),
		strconv.Itoa(info.TableSize),
	}
	return w.write("run.csv", header, [][]string{row})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "smart_side", "starting_player", "winner", "moves", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.SmartSide.String(),
			record.StartingPlayer.String(),
			record.Winner.String(),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "row", "col"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			strconv.Itoa(record.Move.Row),
			strconv.Itoa(record.Move.Col),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", name)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return errors.Wrapf(err, "failed to write %s header", name)
	}
	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrapf(err, "failed to write %s rows", name)
	}
	return nil
}
