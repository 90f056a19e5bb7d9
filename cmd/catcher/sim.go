package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	engine "github.com/vovakirdan/tui-catcher/internal/catcher"
	"github.com/vovakirdan/tui-catcher/internal/config"
	"github.com/vovakirdan/tui-catcher/internal/registry"
	"github.com/vovakirdan/tui-catcher/internal/storage"
)

var (
	flagSimRuns  int
	flagSimSave  bool
	flagSimLimit time.Duration
)

var simCmd = &cobra.Command{
	Use:   "sim <mode>",
	Short: "Run headless sessions with the autopilot",
	Long: `Play sessions without a terminal, steering with a simple autopilot
that chases the lowest orange and ignores rotten ones. Useful for tuning
configs and checking balance.

Examples:
  catcher sim catcher
  catcher sim catcher_rush --runs 20 --seed 7
  catcher sim catcher --config ./my-catcher.toml --difficulty hard --save`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 5, "Number of sessions")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store results in the scores database")
	simCmd.Flags().DurationVar(&flagSimLimit, "max-time", 10*time.Minute, "Stop sessions that run longer than this")
}

func runSim(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'catcher list' to see available modes", gameID)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadValidated(gameID, flagConfig, preset)
	if err != nil {
		return err
	}

	var store *storage.Store
	if flagSimSave {
		if store = openStore(); store != nil {
			defer store.Close()
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	step := time.Second / time.Duration(max(flagFPS, 1))

	fmt.Printf("  %-3s  %-6s  %-6s  %s\n", "Run", "Score", "Result", "Time")
	wins := 0
	for i := range flagSimRuns {
		e, err := engine.New(cfg, engine.WithSeed(seed+int64(i)), engine.WithLogger(logger))
		if err != nil {
			return err
		}
		e.Start()
		for e.Phase() == engine.PhaseRunning && e.Elapsed() < flagSimLimit {
			e.Tick(step, engine.Autopilot(e))
		}

		over, ok := e.Result()
		if !ok {
			fmt.Printf("  %-3d  %-6d  %-6s  %.1fs (stopped)\n", i+1, e.Score(), "-", e.Elapsed().Seconds())
			continue
		}
		if over.Won() {
			wins++
		}
		fmt.Printf("  %-3d  %-6d  %-6s  %.1fs\n", i+1, over.FinalScore, over.Verdict, e.Elapsed().Seconds())

		if store != nil {
			r := storage.Result{
				SessionID: uuid.NewString(),
				GameID:    gameID,
				Score:     over.FinalScore,
				Verdict:   over.Verdict,
				Duration:  e.Elapsed(),
			}
			if _, err := store.SaveResult(r); err != nil {
				logger.Warn("could not save sim result", "err", err)
			}
		}
	}
	fmt.Printf("\n%d/%d won\n", wins, flagSimRuns)
	return nil
}
