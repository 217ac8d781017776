package cmd

import (
	"context"
	"fmt"

	"image-rotator/core/config"
	"image-rotator/core/database"
	"image-rotator/core/logger"
	"image-rotator/core/notify"
	"image-rotator/feature/catalog/models"
	"image-rotator/feature/delivery"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	sendTo     string
	sendFolder string
)

// sendCmd delivers today's pick for a folder over MMS.
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send today's pick for a folder over MMS",
	Long: `Deliver the first of today's picks for a folder to a phone number.
The delivery is logged and its status is updated by provider callbacks
when the server is running.`,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendTo, "to", "", "Destination phone number (E.164)")
	sendCmd.Flags().StringVar(&sendFolder, "folder", "", "Folder whose pick to send")
	_ = sendCmd.MarkFlagRequired("to")
	_ = sendCmd.MarkFlagRequired("folder")

	RootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
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

	notifier := notify.NewClient(cfg.Messaging)
	svc := delivery.NewService(db, notifier, l, cfg.Messaging.Body)

	entry, err := svc.SendDaily(ctx, sendTo, sendFolder)
	if err != nil {
		return fmt.Errorf("delivery failed: %w", err)
	}

	messageID := ""
	if entry.MessageID != nil {
		messageID = *entry.MessageID
	}
	l.Info("Delivery sent",
		zap.String("folder", sendFolder),
		zap.String("message_id", messageID),
	)
	return nil
}
