package report

import (
	"context"
	"fmt"
	"path"

	"image-rotator/core/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Row is one ranked line of the monthly delivery report.
type Row struct {
	Rank     int    `json:"rank"`
	Period   string `json:"period"`
	Folder   string `json:"folder"`
	URL      string `json:"url"`
	Path     string `json:"path"`
	Filename string `json:"filename"`
	Count    int    `json:"count"`
}

// Service aggregates delivery history into ranked reports.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
	sink   Sink
}

// NewService creates a new report service. sink may be nil when exports are
// not configured; MonthlyReport still works.
func NewService(db *gorm.DB, logger *zap.Logger, sink Sink) *Service {
	return &Service{db: db, logger: logger, sink: sink}
}

// record mirrors the joined query row before ranking.
type record struct {
	URL    string
	Path   string
	Folder string
	Count  int
}

// MonthlyReport returns the period's confirmed deliveries ranked by count,
// most delivered first.
func (s *Service) MonthlyReport(ctx context.Context, month string, year int) ([]Row, error) {
	var records []record
	err := s.db.WithContext(ctx).Table("histories").
		Select("images.url AS url, images.remote_path AS path, folders.name AS folder, histories.count AS count").
		Joins("JOIN images ON images.id = histories.image_id").
		Joins("JOIN folders ON folders.id = images.folder_id").
		Where("histories.month = ? AND histories.year = ?", month, year).
		Order("histories.count DESC").
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load history for %s %d: %w", month, year, err)
	}

	period := utils.PeriodLabel(month, year)
	rows := make([]Row, 0, len(records))
	for i, r := range records {
		rows = append(rows, Row{
			Rank:     i + 1,
			Period:   period,
			Folder:   r.Folder,
			URL:      r.URL,
			Path:     r.Path,
			Filename: path.Base(r.Path),
			Count:    r.Count,
		})
	}
	return rows, nil
}

// Export builds the period's report and pushes it to the configured sink.
func (s *Service) Export(ctx context.Context, month string, year int) (string, error) {
	if s.sink == nil {
		return "", fmt.Errorf("no report sink configured")
	}

	rows, err := s.MonthlyReport(ctx, month, year)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("daily-image-report-%d-%s", year, month)
	if err := s.sink.Export(ctx, name, rows); err != nil {
		return "", fmt.Errorf("failed to export report %s: %w", name, err)
	}

	s.logger.Info("Report exported",
		zap.String("report", name),
		zap.Int("rows", len(rows)),
	)
	return name, nil
}
