package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ascii-trials/internal/assets"
	"github.com/vovakirdan/ascii-trials/internal/registry"
)

var flagBitmaps bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all scenes",
	Long:  `Shows every registered scene in the order the campaign plays them.`,
	Run:   runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagBitmaps, "bitmaps", false, "List the built-in bitmaps instead, with their sizes")
}

func runList(cmd *cobra.Command, args []string) {
	if flagBitmaps {
		listBitmaps()
		return
	}
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No scenes available.")
		return
	}

	fmt.Println("Scenes, in campaign order:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Kind")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "----")
	for _, g := range games {
		kind := "game"
		if g.Narrative {
			kind = "story"
		}
		fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, g.ID, g.Title, kind)
	}

	fmt.Println()
	fmt.Println("Run 'trials play' for the full campaign or 'trials play <id>' for one scene.")
}

// listBitmaps shows each built-in bitmap as --assets would resolve it.
func listBitmaps() {
	loader := assets.NewLoader(flagAssets)
	for _, name := range assets.Names() {
		g, err := loader.Load(name)
		if err != nil {
			fmt.Printf("  %-18s  error: %v\n", name, err)
			continue
		}
		fmt.Printf("  %-18s  %dx%d\n", name, g.Width(), g.Height())
	}
}
