package cmd

import (
	"context"
	"fmt"
	"strings"

	"image-rotator/core/config"
	"image-rotator/core/database"
	"image-rotator/core/logger"
	"image-rotator/core/storage"
	"image-rotator/core/utils"
	"image-rotator/feature/catalog/models"
	"image-rotator/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reportMonth  string
	reportYear   int
	reportExport bool
)

// reportCmd prints or exports the monthly delivery report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the monthly delivery report",
	Long: `Rank the period's confirmed deliveries by count, most delivered first.
Defaults to the current period in UTC-5. With --export the report is
also uploaded as CSV to object storage.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportMonth, "month", "", "Month name (defaults to current)")
	reportCmd.Flags().IntVar(&reportYear, "year", 0, "Year (defaults to current)")
	reportCmd.Flags().BoolVar(&reportExport, "export", false, "Upload the report as CSV to object storage")

	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

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

	month, year := utils.CurrentPeriod()
	if reportMonth != "" {
		// Month names are stored capitalized ("August")
		lower := strings.ToLower(reportMonth)
		month = strings.ToUpper(lower[:1]) + lower[1:]
	}
	if reportYear != 0 {
		year = reportYear
	}

	var svc *report.Service
	if reportExport {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		svc = report.NewFeature(client, cfg.Storage, l, db).Service()
	} else {
		svc = report.NewService(db, l, nil)
	}

	rows, err := svc.MonthlyReport(ctx, month, year)
	if err != nil {
		return fmt.Errorf("monthly report failed: %w", err)
	}

	l.Info("Monthly report", zap.String("period", utils.PeriodLabel(month, year)), zap.Int("rows", len(rows)))
	for _, row := range rows {
		l.Info("Report row",
			zap.Int("rank", row.Rank),
			zap.String("folder", row.Folder),
			zap.String("filename", row.Filename),
			zap.Int("count", row.Count),
		)
	}

	if reportExport {
		name, err := svc.Export(ctx, month, year)
		if err != nil {
			return fmt.Errorf("report export failed: %w", err)
		}
		l.Info("Report exported", zap.String("report", name))
	}

	return nil
}
