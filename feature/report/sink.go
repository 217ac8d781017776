package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"path"
	"strconv"

	"image-rotator/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Sink persists a finished report somewhere operators can read it.
type Sink interface {
	Export(ctx context.Context, name string, rows []Row) error
}

// StorageSink writes reports as CSV objects next to the image library.
type StorageSink struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewStorageSink creates a sink that uploads CSV reports to object storage.
func NewStorageSink(client storage.Client, cfg storage.Config, logger *zap.Logger) *StorageSink {
	return &StorageSink{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.ReportPrefix,
		logger: logger,
	}
}

var csvHeader = []string{"rank", "period", "folder", "filename", "path", "url", "count"}

// Export renders rows as CSV and uploads them under the report prefix.
func (s *StorageSink) Export(ctx context.Context, name string, rows []Row) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	for _, row := range rows {
		rec := []string{
			strconv.Itoa(row.Rank),
			row.Period,
			row.Folder,
			row.Filename,
			row.Path,
			row.URL,
			strconv.Itoa(row.Count),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	object := path.Join(s.prefix, name+".csv")
	_, err := s.client.PutObject(ctx, s.bucket, object, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return fmt.Errorf("failed to upload report %s: %w", object, err)
	}

	s.logger.Debug("Report uploaded", zap.String("object", object))
	return nil
}
