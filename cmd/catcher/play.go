package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catcher/internal/audio"
	"github.com/vovakirdan/tui-catcher/internal/config"
	"github.com/vovakirdan/tui-catcher/internal/games/catcher"
	"github.com/vovakirdan/tui-catcher/internal/platform/tui"
	"github.com/vovakirdan/tui-catcher/internal/registry"
	"github.com/vovakirdan/tui-catcher/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Space/Enter   - Start
  Left/Right    - Move basket (also A/D or H/L)
  Mouse         - Hold on the left or right half to steer
  P/Esc         - Pause
  R             - Restart
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower objects, gentler speed-up, more time
  normal - Config as written
  hard   - Faster objects, narrower basket, less time
  fixed  - No speed-up while playing

Examples:
  catcher play catcher
  catcher play catcher_rush --difficulty hard
  catcher play catcher --config ./my-catcher.yaml
  catcher play catcher --mute`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound and music")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Output volume between 0 and 1")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'catcher list' to see available modes", gameID)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	// Fail before the TUI takes the terminal.
	if _, err := config.LoadValidated(gameID, flagConfig, preset); err != nil {
		return err
	}
	catcher.SetConfigPath(flagConfig)
	catcher.SetDifficultyPreset(string(preset))

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	player := newAudio()
	defer player.Close()

	if err := tui.Run(game, runtimeConfig(), modelOptions(store, player)...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func newAudio() *audio.Player {
	p := audio.NewPlayer(
		audio.WithMute(flagMute),
		audio.WithVolume(flagVolume),
		audio.WithLogger(logger),
	)
	if err := p.Init(); err != nil {
		logger.Warn("continuing without sound", "err", err)
	}
	return p
}

func modelOptions(store *storage.Store, player *audio.Player) []tui.ModelOption {
	opts := []tui.ModelOption{tui.WithAudio(player), tui.WithLogger(logger)}
	if store != nil {
		opts = append(opts, tui.WithStore(store))
	}
	return opts
}

// applyPreset hands a menu choice to games that take one per instance.
func applyPreset(g registry.Game, p config.DifficultyPreset) {
	if c, ok := g.(*catcher.Game); ok {
		c.SetPreset(p)
	}
}
