package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku"
	bcore "github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/core"
	"github.com/vovakirdan/tui-blockdoku/internal/storage"
)

var (
	flagSimTurns      int
	flagSimDifficulty string
	flagSimLayout     string
	flagSimSave       bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the greedy bot without a terminal UI",
	Long: `Play a game headless with a greedy bot: each turn it takes the placement
with the highest immediate score, ties going to the lowest slot and the
first origin in row-major order. The same seed always gives the same game.

Examples:
  blockdoku sim --seed 42
  blockdoku sim --seed 7 --turns 50 --difficulty hard --layout minefield
  blockdoku sim --seed 3 --save --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTurns, "turns", 1000, "Maximum turns (0 = until game over)")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	simCmd.Flags().StringVar(&flagSimLayout, "layout", "", "Starting layout ID")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the result in the scores database")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(flagSimDifficulty)
	if err != nil {
		return err
	}

	opts, err := blockdoku.SessionOptions(cfg, flagSimLayout, logger)
	if err != nil {
		return err
	}
	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	opts = append(opts, bcore.WithSeed(seed))

	session, err := bcore.NewSession(opts...)
	if err != nil {
		return err
	}

	turns := bcore.Autoplay(session, flagSimTurns)
	snap := session.Snapshot()
	logger.Info("simulation finished", "seed", seed, "turns", turns, "score", snap.Score, "state", snap.State)

	printSnapshot(snap)

	if flagSimSave {
		return saveSim(session, logger)
	}
	return nil
}

func printSnapshot(snap bcore.Snapshot) {
	fmt.Printf("Difficulty: %s\n", snap.Difficulty)
	fmt.Printf("State:      %s\n", snap.State)
	fmt.Printf("Score:      %d\n", snap.Score)
	fmt.Printf("Placements: %d  Lines: %d  Cells cleared: %d\n",
		snap.Stats.Placements, snap.Stats.LinesCleared, snap.Stats.CellsCleared)
	fmt.Printf("Bombs:      %d spawned, %d defused, %d exploded\n",
		snap.Stats.BombsSpawned, snap.Stats.BombsDefused, snap.Stats.BombsExploded)
	fmt.Println()
	fmt.Print(formatBoard(snap.Cells))

	names := make([]string, 0, len(snap.Slots))
	for _, s := range snap.Slots {
		if s.IsZero() {
			names = append(names, "-")
			continue
		}
		names = append(names, s.Name())
	}
	fmt.Println()
	fmt.Printf("Slots: %s\n", strings.Join(names, ", "))
}

// formatBoard renders cells as text: '.' empty, '#' filled, 'x' exploded and
// the timer digit for a bomb ('+' above 9).
func formatBoard(cells [bcore.CellCount]bcore.Cell) string {
	var b strings.Builder
	for row := range bcore.Size {
		if row > 0 && row%bcore.BoxSize == 0 {
			b.WriteString("------+-------+------\n")
		}
		for col := range bcore.Size {
			if col > 0 && col%bcore.BoxSize == 0 {
				b.WriteString("| ")
			}
			b.WriteString(cellChar(cells[bcore.Index(row, col)]))
			if col < bcore.Size-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellChar(c bcore.Cell) string {
	switch c.Kind {
	case bcore.CellFilled:
		return "#"
	case bcore.CellExploded:
		return "x"
	case bcore.CellBomb:
		if c.Timer > 9 {
			return "+"
		}
		return fmt.Sprint(c.Timer)
	default:
		return "."
	}
}

// saveSim records the bot run under "<game>_sim" so it stays apart from
// played games.
func saveSim(session *bcore.Session, logger *log.Logger) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	st := session.Stats()
	run := storage.Run{
		RunID:         uuid.NewString(),
		GameID:        blockdoku.IDFor(session.Difficulty()) + "_sim",
		Score:         session.Score(),
		Placements:    st.Placements,
		LinesCleared:  st.LinesCleared,
		BombsDefused:  st.BombsDefused,
		BombsExploded: st.BombsExploded,
	}
	id, err := store.SaveRun(run)
	if err != nil {
		return err
	}
	logger.Info("run saved", "id", id, "run", run.RunID, "game", run.GameID)
	return nil
}
