package cmd

import (
	"context"
	"fmt"

	"image-rotator/core/config"
	"image-rotator/core/database"
	"image-rotator/core/logger"
	"image-rotator/core/storage"
	"image-rotator/feature/catalog"
	"image-rotator/feature/catalog/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd reconciles the catalog against the remote image library.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the catalog with the remote image library",
	Long: `Diff the remote image library against the catalog and apply the result.
Images that vanished remotely are removed; new images are added with
fresh shareable links. Unchanged images keep their rotation state.`,
	RunE: runSync,
}

func init() {
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Large catalogs take a while; the whole run is bounded by the
	// configured transaction timeout.
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
	if err := database.Migrate(db, models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	svc := catalog.NewFeature(client, cfg.Storage, l, db).Service()

	l.Info("Starting catalog sync")
	plan, err := svc.Sync(ctx)
	if err != nil {
		return fmt.Errorf("catalog sync failed: %w", err)
	}

	l.Info("Catalog sync finished",
		zap.Int("remote_items", plan.Summary.RemoteItems),
		zap.Int("catalog_items", plan.Summary.CatalogItems),
		zap.Int("additions", plan.Summary.Additions),
		zap.Int("removals", plan.Summary.Removals),
	)
	return nil
}
