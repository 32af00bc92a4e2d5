package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ascii-trials/internal/campaign"
	"github.com/vovakirdan/ascii-trials/internal/core"
	"github.com/vovakirdan/ascii-trials/internal/engine"
	"github.com/vovakirdan/ascii-trials/internal/games/basketball"
	"github.com/vovakirdan/ascii-trials/internal/games/dodger"
	"github.com/vovakirdan/ascii-trials/internal/games/intro"
	"github.com/vovakirdan/ascii-trials/internal/logging"
	"github.com/vovakirdan/ascii-trials/internal/platform/tui"
	"github.com/vovakirdan/ascii-trials/internal/sound"
	"github.com/vovakirdan/ascii-trials/internal/storage"
)

// env holds what every interactive command shares: logger, result store
// and sound output.
type env struct {
	logger    *log.Logger
	logCloser io.Closer
	store     *storage.Store
	effects   core.EffectPlayer
	player    *sound.Player
}

// openEnv builds the logger, opens the result store and starts sound.
// A missing store or sound device is logged and the session goes on
// without it.
func openEnv() (*env, error) {
	logger, closer, err := logging.New(logging.Options{Path: flagLogFile, Level: flagLogLevel, Prefix: "trials"})
	if err != nil {
		return nil, err
	}
	e := &env{logger: logger, logCloser: closer, effects: sound.Nop{}}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results disabled", "err", err)
	} else {
		e.store = store
	}

	if flagSound {
		p, err := sound.NewPlayer(flagVolume)
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			e.player = p
			e.effects = p
		}
	}

	intro.SetMarkerPath(flagMarker)
	return e, nil
}

// runner configures a campaign runner for a terminal of the given size.
func (e *env) runner(width, height int) *campaign.Runner {
	r := &campaign.Runner{
		Runtime: core.RuntimeConfig{
			ScreenW:   width,
			ScreenH:   height,
			TickRate:  flagFPS,
			Seed:      seed(),
			AssetsDir: flagAssets,
			Effects:   e.effects,
		},
		TickRate: flagFPS,
		Logger:   e.logger,
	}
	if e.store != nil {
		r.Results = e.store
	}
	return r
}

// results returns the store as a board source, or nil without one.
func (e *env) results() tui.ResultSource {
	if e.store == nil {
		return nil
	}
	return e.store
}

func (e *env) close() {
	if e.player != nil {
		e.player.Close()
	}
	if e.store != nil {
		e.store.Close()
	}
	e.logCloser.Close()
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// configureGames applies --config to the named game and --difficulty to
// every game.
func configureGames(only, configPath, difficulty string) {
	dodger.SetDifficultyPreset(difficulty)
	basketball.SetDifficultyPreset(difficulty)
	switch only {
	case "dodger":
		dodger.SetConfigPath(configPath)
	case "basketball":
		basketball.SetConfigPath(configPath)
	}
}

// requireTerminal fails before any loop starts when stdin or stdout is
// not an interactive terminal.
func requireTerminal() error {
	if err := engine.RequireTerminal(os.Stdin); err != nil {
		return err
	}
	return engine.RequireTerminal(os.Stdout)
}
