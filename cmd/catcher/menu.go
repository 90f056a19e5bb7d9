package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catcher/internal/config"
	"github.com/vovakirdan/tui-catcher/internal/games/catcher"
	"github.com/vovakirdan/tui-catcher/internal/platform/tui"
	"github.com/vovakirdan/tui-catcher/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to change difficulty
and Enter to play. After a session you return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Tab             - Scoreboard
  Q               - Quit

Examples:
  catcher menu
  catcher menu --fps 30
  catcher menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	if flagConfig != "" {
		if _, err := config.Load(config.VariantClassic, flagConfig); err != nil {
			return err
		}
	}
	catcher.SetConfigPath(flagConfig)

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	player := newAudio()
	defer player.Close()

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		applyPreset(game, menuResult.Preset)

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		logger.Info("session starting", "mode", menuResult.GameID, "difficulty", menuResult.Preset)
		if err := tui.Run(game, cfg, modelOptions(store, player)...); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
