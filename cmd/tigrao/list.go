package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tigrao/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available boards",
	Long:  `Shows a list of all boards registered in tigrao.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len([]rune(g.Title)))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Board")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")

	for _, g := range games {
		// %-*s pads by bytes; pad by runes so accented titles line up.
		pad := maxTitleLen - len([]rune(g.Title))
		fmt.Printf("  %-*s  %s%*s  %s\n", maxIDLen, g.ID, g.Title, pad, "", g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'tigrao play <id>' to play a board.")
}
