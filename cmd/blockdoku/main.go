// blockdoku is a terminal Blockdoku: fill rows, columns and 3x3 boxes on a
// 9x9 board before the bombs go off.
//
// Usage:
//
//	blockdoku play [game]    - Play a game directly
//	blockdoku menu           - Pick difficulty and starting board interactively
//	blockdoku list           - List game modes and layouts
//	blockdoku scores [game]  - Show high scores
//	blockdoku shapes         - Print the shape catalog
//	blockdoku sim            - Run the greedy bot headless
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.blockdoku/configs, ./configs)
//	--db <path>         - Database path (default: ~/.blockdoku/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--seed <value>      - RNG seed for reproducible games
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blockdoku/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagFPS      int
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockdoku",
	Short: "Blockdoku - block puzzle in your terminal",
	Long: `Blockdoku places tetromino-like shapes on a 9x9 board. Completing a row,
a column or a 3x3 box clears it. Bombs count down with every placement and
ruin their cell when they reach zero.

Available commands:
  play     - Play a game directly
  menu     - Interactive difficulty and board picker
  list     - Show game modes and starting layouts
  scores   - View high scores
  shapes   - Print the shape catalog
  sim      - Run the greedy bot without a terminal UI

Examples:
  blockdoku play
  blockdoku play blockdoku_hard --layout minefield
  blockdoku sim --seed 7 --turns 200`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(simCmd)
}
