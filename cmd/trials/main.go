// trials is a terminal sprite engine running a short campaign of ASCII
// games: a prologue, a dodging arena, an interlude and a basketball court.
//
// Usage:
//
//	trials list              - List scenes in campaign order
//	trials play [scene]      - Play the campaign, or a single scene
//	trials menu              - Pick a scene interactively
//	trials scores [game]     - Print results
//	trials board             - Browse results in a table
//	trials serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Simulation rate (default: 10)
//	--seed <value>      - RNG seed for reproducible spawns
//	--db <path>         - Results database (default: ~/.trials/results.db)
//	--backend tea|tcell|plain - Terminal frontend
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/ascii-trials/internal/games/basketball"
	_ "github.com/vovakirdan/ascii-trials/internal/games/dodger"
	_ "github.com/vovakirdan/ascii-trials/internal/games/intro"
	"github.com/vovakirdan/ascii-trials/internal/logging"
	"github.com/vovakirdan/ascii-trials/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
	flagBackend  string
	flagSound    bool
	flagVolume   float64
	flagAssets   string
	flagMarker   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trials",
	Short: "ASCII Trials - a terminal sprite engine and its games",
	Long: `ASCII Trials renders sprites, terrain and text animations in the
terminal and strings them into a short campaign.

Available commands:
  list     - Show the scenes in campaign order
  play     - Play the campaign or a single scene
  menu     - Interactive scene picker
  scores   - Print recorded results
  board    - Browse recorded results
  serve    - Start SSH server for remote play

Examples:
  trials play
  trials play dodger --difficulty hard
  trials play basketball --backend tcell
  trials scores dodger
  trials serve --ssh :2222`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 10, "Simulation ticks per second")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.trials/results.db", "Path to results database")
	pf.StringVar(&flagLogFile, "log-file", logging.DefaultPath, `Log file ("-" for stderr, "" to disable)`)
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagBackend, "backend", "tea", "Terminal frontend: tea, tcell or plain")
	pf.BoolVar(&flagSound, "sound", false, "Play sound effects")
	pf.Float64Var(&flagVolume, "volume", 0.5, "Sound volume between 0 and 1")
	pf.StringVar(&flagAssets, "assets", "", "Directory overriding the built-in bitmaps")
	pf.StringVar(&flagMarker, "marker", storage.DefaultMarkerPath, "File recording that the prologue was seen")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
}
