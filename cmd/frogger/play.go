package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/audio"
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: frogger).

Controls:
  Arrows/WASD/HJKL  - Hop
  P                 - Pause
  R/Enter           - Restart (after game over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start slow, five lives
  normal - Start at 30% speed-up, progresses to max
  hard   - Start at 70% speed-up, two lives, pads sink twice as often
  fixed  - No progression, stays at the config's initial level

Examples:
  frogger play
  frogger play frogger_classic
  frogger play --difficulty hard
  frogger play --config ./my-frogger.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from an interactive menu",
	Long: `Open the variant picker. Tab shows the scoreboard, B/Esc returns
from a paused or finished round to the menu.`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		c.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := config.VariantFrogger
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'frogger list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog := mustFileLogger()
	defer closeLog()

	configureGames(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	deps, cleanup := openDeps(gameID, logger)
	runErr := tui.Run(game, deps, runtimeConfig())
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := mustFileLogger()
	defer closeLog()

	configureGames(logger)

	deps, cleanup := openDeps(config.VariantFrogger, logger)
	runErr := tui.RunSession(deps, runtimeConfig())
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running menu: %v\n", runErr)
		os.Exit(1)
	}
}

// configureGames hands the CLI flags to the game package before any game is created.
func configureGames(logger *log.Logger) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Warning: unknown difficulty %q, using config defaults\n", flagDifficulty)
	}
	frogger.SetConfigPath(flagConfig)
	frogger.SetDifficultyPreset(flagDifficulty)
	frogger.SetLogger(logger)
}

// runtimeConfig sizes the board to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openDeps opens the score store and the speaker. Both degrade on failure.
func openDeps(gameID string, logger *log.Logger) (tui.Deps, func()) {
	deps := tui.Deps{Logger: logger, Audio: audio.Nop{}, Player: os.Getenv("USER")}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		deps.Store = store
	}

	if !flagMute {
		cfg, err := config.Load(gameID, flagConfig)
		if err != nil {
			cfg = config.DefaultFor(gameID)
		}
		player, err := audio.New(cfg.Audio)
		if err != nil {
			logger.Warn("audio unavailable, playing silently", "err", err)
		}
		deps.Audio = player
	}

	return deps, func() {
		deps.Audio.Close()
		if deps.Store != nil {
			if err := deps.Store.Close(); err != nil {
				logger.Warn("could not close scores database", "err", err)
			}
		}
	}
}
