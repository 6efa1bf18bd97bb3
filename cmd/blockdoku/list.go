package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/layouts"
	"github.com/vovakirdan/tui-blockdoku/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and starting layouts",
	Long:  `Shows the registered game modes and every loadable starting layout.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()

	fmt.Println("Game modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	cfg, err := loadConfig("")
	if err != nil {
		return err
	}
	all, err := layouts.Available(cfg.LayoutsDir)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Layouts:")
	fmt.Println()
	maxIDLen = 2
	for _, l := range all {
		maxIDLen = max(maxIDLen, len(l.ID))
	}
	for _, l := range all {
		fmt.Printf("  %-*s  %s\n", maxIDLen, l.ID, l.Name)
		if l.Description != "" {
			fmt.Printf("  %-*s  %s\n", maxIDLen, "", l.Description)
		}
	}

	fmt.Println()
	fmt.Println("Run 'blockdoku play <id> --layout <layout>' to play.")
	return nil
}
