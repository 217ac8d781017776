package cmd

import (
	"context"
	"fmt"

	"image-rotator/core/config"
	"image-rotator/core/database"
	"image-rotator/core/logger"
	"image-rotator/feature/catalog/models"
	"image-rotator/feature/picker"

	"github.com/spf13/cobra"
)

// pickCmd rotates the daily selection for every folder.
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick today's images for every folder",
	Long: `Clear yesterday's selection and pick a fresh random set per folder.
Images are not repeated until a folder's whole collection has been shown,
at which point the rotation starts over.`,
	RunE: runPick,
}

func init() {
	RootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.TxTimeout())
	defer cancel()

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if missing := database.MissingTables(db, models.Tables()...); len(missing) > 0 {
		return fmt.Errorf("catalog schema not migrated, missing tables: %v (run sync or start first)", missing)
	}

	svc := picker.NewFeature(db, l).Service()

	l.Info("Starting daily pick")
	if err := svc.PickDaily(ctx); err != nil {
		return fmt.Errorf("daily pick failed: %w", err)
	}

	l.Info("Daily pick finished")
	return nil
}
