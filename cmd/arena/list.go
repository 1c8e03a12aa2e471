package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robot-arena/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available bots",
	Long:  `Shows a list of all bots registered in the arena.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	bots := registry.List()

	if len(bots) == 0 {
		fmt.Println("No bots available.")
		return
	}

	fmt.Println("Available bots:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, b := range bots {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, b := range bots {
		fmt.Printf("  %-*s  %s\n", maxIDLen, b.ID, b.Title)
	}

	fmt.Println()
	fmt.Println("Run 'arena watch <id> <id>' to watch two bots fight.")
}
