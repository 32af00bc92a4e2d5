package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ascii-trials/internal/campaign"
	"github.com/vovakirdan/ascii-trials/internal/engine"
	"github.com/vovakirdan/ascii-trials/internal/platform/tcellterm"
	"github.com/vovakirdan/ascii-trials/internal/platform/tui"
	"github.com/vovakirdan/ascii-trials/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [scene]",
	Short: "Play the campaign or a single scene",
	Long: `Play every scene in campaign order, or only the named one.
The campaign stops at the first lost game.

Controls:
  Arrows/WASD - Move
  Space       - Jump
  R / F       - Charge / release a throw
  Enter/N     - Skip a story scene
  P           - Pause
  C/Esc       - Quit
  Ctrl+S      - Save a screenshot (tea backend)

Resizing the terminal ends the session.

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  trials play
  trials play dodger --difficulty easy
  trials play basketball --config ./my-court.yaml
  trials play --backend tcell --sound
  trials play dodger --backend plain`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML (single game only)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	ids := registry.Campaign()
	only := ""
	if len(args) == 1 {
		only = args[0]
		if !registry.Exists(only) {
			fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", only)
			fmt.Fprintln(os.Stderr, "Run 'trials list' to see available scenes.")
			os.Exit(1)
		}
		ids = []string{only}
	}
	configureGames(only, flagConfig, flagDifficulty)

	if err := play(ids); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(ids []string) error {
	if err := requireTerminal(); err != nil {
		return err
	}
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	width, height := engine.TerminalSize(os.Stdout, 80, 24)
	runner := e.runner(width, height)
	e.logger.Info("playing", "scenes", ids, "backend", flagBackend, "seed", runner.Runtime.Seed)

	var outcomes []campaign.Outcome
	switch flagBackend {
	case "tea":
		outcomes, err = tui.Run(ctx, runner, ids)
	case "tcell":
		outcomes, err = playTcell(ctx, runner, ids)
		printOutcomes(outcomes)
	case "plain":
		outcomes, err = playPlain(ctx, runner, ids)
		printOutcomes(outcomes)
	default:
		return fmt.Errorf("unknown backend %q (want tea, tcell or plain)", flagBackend)
	}
	if err != nil && !campaign.Quit(err) {
		return err
	}
	return nil
}

func playTcell(ctx context.Context, runner *campaign.Runner, ids []string) ([]campaign.Outcome, error) {
	term, err := tcellterm.Open()
	if err != nil {
		return nil, err
	}
	defer term.Close()
	w, h := term.Size()
	runner.Runtime.ScreenW, runner.Runtime.ScreenH = w, h
	return runner.Run(ctx, ids, term, term)
}

// playPlain prints bare frames to stdout and reads keys from stdin in raw
// mode.
func playPlain(ctx context.Context, runner *campaign.Runner, ids []string) ([]campaign.Outcome, error) {
	restore, err := engine.RawMode(os.Stdin)
	if err != nil {
		return nil, err
	}
	defer restore()

	display := engine.NewWriterDisplay(os.Stdout, true)
	defer display.Close()
	return runner.Run(ctx, ids, display, engine.NewReaderKeys(os.Stdin))
}

// printOutcomes writes a plain summary once the terminal is restored.
func printOutcomes(outcomes []campaign.Outcome) {
	for _, o := range outcomes {
		if o.Narrative {
			continue
		}
		verdict := "lost"
		if o.State.Won {
			verdict = "won"
		}
		fmt.Printf("%-12s %-4s score %-4d %s\n", o.Title, verdict, o.State.Score, o.Duration.Round(time.Second))
	}
}
