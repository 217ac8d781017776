package delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"image-rotator/core/notify"
	"image-rotator/core/utils"
	"image-rotator/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ActionSendDaily tags delivery logs created by the daily-image send.
const ActionSendDaily = "send_daily_image"

// ErrSendFailed marks a failed send attempt.
var ErrSendFailed = errors.New("delivery send failed")

// ErrNoPick is returned when a folder has no real pick to send.
var ErrNoPick = errors.New("no picked image available for folder")

// Service sends picked images and records delivery outcomes.
type Service struct {
	db       *gorm.DB
	notifier notify.Notifier
	logger   *zap.Logger
	body     string
}

// NewService creates a new delivery service. body is the message text sent
// along with the image.
func NewService(db *gorm.DB, notifier notify.Notifier, logger *zap.Logger, body string) *Service {
	return &Service{db: db, notifier: notifier, logger: logger, body: body}
}

// SendDaily sends the folder's first current pick to the given number and
// records a DeliveryLog in status SENT, keyed by the provider message id for
// later callback correlation.
func (s *Service) SendDaily(ctx context.Context, to, folderName string) (*models.DeliveryLog, error) {
	var img models.Image
	err := s.db.WithContext(ctx).
		Joins("JOIN folders ON folders.id = images.folder_id").
		Where("images.is_todays_pick = ? AND folders.name = ?", true, folderName).
		Order("images.id").
		First(&img).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNoPick, folderName)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading pick: %v", ErrSendFailed, err)
	}

	messageID, err := s.notifier.SendImage(ctx, to, s.body, img.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	entry := models.DeliveryLog{
		Action:    ActionSendDaily,
		MessageID: &messageID,
		ImageID:   img.ID,
		Status:    models.StatusSent,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("%w: recording delivery log: %v", ErrSendFailed, err)
	}

	s.logger.Info("Daily image sent",
		zap.String("folder", folderName),
		zap.String("message_id", messageID),
	)
	return &entry, nil
}

// RecordStatus applies an asynchronous delivery-status callback. The log
// entry is looked up by provider message id; the first transition to
// DELIVERED increments the image's (month, year) history counter. Unknown
// message ids are logged and ignored, since providers may replay callbacks
// for messages sent before the catalog was pruned.
func (s *Service) RecordStatus(ctx context.Context, messageID, providerStatus string) error {
	status, recognized := mapProviderStatus(providerStatus)
	if !recognized {
		s.logger.Debug("Ignoring intermediate delivery status",
			zap.String("message_id", messageID),
			zap.String("status", providerStatus),
		)
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry models.DeliveryLog
		err := tx.Where("message_id = ?", messageID).First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Delivery callback for unknown message", zap.String("message_id", messageID))
			return nil
		}
		if err != nil {
			return fmt.Errorf("loading delivery log: %w", err)
		}
		if entry.Status == status {
			return nil // duplicate callback
		}

		if err := tx.Model(&entry).Update("status", status).Error; err != nil {
			return fmt.Errorf("updating delivery status: %w", err)
		}

		if status == models.StatusDelivered {
			if err := incrementHistory(tx, entry.ImageID); err != nil {
				return err
			}
		}
		return nil
	})
}

// incrementHistory bumps the per-period counter for the image, creating the
// (image, month, year) row on first confirmed delivery in the period.
func incrementHistory(tx *gorm.DB, imageID int) error {
	month, year := utils.CurrentPeriod()

	var h models.History
	err := tx.Where("image_id = ? AND month = ? AND year = ?", imageID, month, year).First(&h).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		h = models.History{ImageID: imageID, Count: 1, Month: month, Year: year}
		if err := tx.Create(&h).Error; err != nil {
			return fmt.Errorf("creating history row: %w", err)
		}
	case err != nil:
		return fmt.Errorf("loading history row: %w", err)
	default:
		if err := tx.Model(&h).UpdateColumn("count", gorm.Expr("count + ?", 1)).Error; err != nil {
			return fmt.Errorf("incrementing history count: %w", err)
		}
	}
	return nil
}

// mapProviderStatus translates provider callback statuses to delivery log
// statuses. Intermediate states (queued, sending, sent) are not recorded.
func mapProviderStatus(providerStatus string) (string, bool) {
	switch strings.ToLower(providerStatus) {
	case "delivered":
		return models.StatusDelivered, true
	case "undelivered":
		return models.StatusUndelivered, true
	case "failed":
		return models.StatusFailed, true
	default:
		return "", false
	}
}
