package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/LavenderBridge/verdure/internal/catalog"
	"github.com/LavenderBridge/verdure/internal/config"
	"github.com/LavenderBridge/verdure/internal/models"
	"github.com/LavenderBridge/verdure/internal/store"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "verdure",
	Short: "A flashcard trainer for plant facts",
	Long: `Verdure is a CLI tool for memorizing plant facts (common and
scientific names, light requirements, trivia) with timed study cycles,
quizzes and local progress tracking.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Home view: a one-line status, then help.
		st, err := openStore()
		if err == nil {
			defer st.Close()
			if p, err := st.LoadProgress(); err == nil {
				fmt.Printf("🌿 Plants studied: %d | Streak: %d day(s)\n\n", p.PlantsStudied, p.Streak)
			}
		}
		cmd.Help()
	},
}

func Execute() {
	var err error
	if cfg, err = config.Load(); err != nil {
		fmt.Println("❌ Config error:", err)
		os.Exit(1)
	}
	logger = newLogger(cfg.Log.Level)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	}))
}

func openStore() (*store.Store, error) {
	return store.Open(cfg.DataDir, logger)
}

// mergedCatalog overlays stored custom images onto the base dataset. A
// corrupt image map is logged inside the store and treated as empty.
func mergedCatalog(st *store.Store) []models.Plant {
	images, _ := st.LoadCustomImages()
	return catalog.Merge(images)
}
