package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ascii-trials/internal/campaign"
	"github.com/vovakirdan/ascii-trials/internal/engine"
	"github.com/vovakirdan/ascii-trials/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick scenes from an interactive menu",
	Long: `Start in interactive menu mode. After a run ends you return to
the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Results board
  Q            - Quit`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := menu(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func menu() error {
	if err := requireTerminal(); err != nil {
		return err
	}
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()
	configureGames("", "", flagDifficulty)

	for {
		width, height := engine.TerminalSize(os.Stdout, 80, 24)
		choice, err := tui.RunMenu(width)
		if err != nil {
			return err
		}

		switch {
		case choice.Quit:
			return nil
		case choice.WantsScoreboard:
			goBack, err := tui.RunScoreboard(e.results(), width, height)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
		default:
			_, err := tui.Run(context.Background(), e.runner(width, height), choice.IDs)
			if err != nil && !campaign.Quit(err) {
				e.logger.Error("run failed", "err", err)
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
