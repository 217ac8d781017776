package catalog

import (
	"errors"
	"fmt"
	"path"
	"sort"

	"context"

	"image-rotator/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrSyncFailed marks an aborted catalog sync. The whole transaction is
// rolled back, so the catalog is never left partially updated; the caller
// is expected to retry on its next scheduled run.
var ErrSyncFailed = errors.New("catalog sync failed")

// Service reconciles the catalog against the remote image library.
type Service struct {
	library Library
	db      *gorm.DB
	logger  *zap.Logger
	root    string
}

// NewService creates a new catalog service. root is the library prefix
// under which images are listed.
func NewService(library Library, db *gorm.DB, logger *zap.Logger, root string) *Service {
	return &Service{
		library: library,
		db:      db,
		logger:  logger,
		root:    root,
	}
}

// Sync diffs the remote library against the catalog and applies the result
// atomically: removed images are deleted (cascading to their delivery logs
// and history), folders are upserted by remote path, and new images are
// created with freshly resolved links. Links are resolved only for new
// images, which bounds the cost of the rate-limited link generation.
//
// The operation is idempotent: a second run against an unchanged library
// produces an empty plan and touches nothing.
func (s *Service) Sync(ctx context.Context) (*Plan, error) {
	remote, err := s.library.ListImages(ctx, s.root)
	if err != nil {
		return nil, fmt.Errorf("%w: listing remote library: %v", ErrSyncFailed, err)
	}

	var existing []string
	if err := s.db.WithContext(ctx).Model(&models.Image{}).Pluck("remote_path", &existing).Error; err != nil {
		return nil, fmt.Errorf("%w: loading catalog paths: %v", ErrSyncFailed, err)
	}

	plan := BuildPlan(remote, existing)
	s.logger.Info("Catalog sync planned",
		zap.Int("remote", plan.Summary.RemoteItems),
		zap.Int("catalog", plan.Summary.CatalogItems),
		zap.Int("additions", plan.Summary.Additions),
		zap.Int("removals", plan.Summary.Removals),
	)
	if plan.Empty() {
		return plan, nil
	}

	// Resolve links only for genuinely new images.
	urls, err := s.library.ResolvePublicURLs(ctx, plan.ToAdd)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving links: %v", ErrSyncFailed, err)
	}
	if missed := len(plan.ToAdd) - len(urls); missed > 0 {
		s.logger.Warn("Some links did not resolve; images deferred to next sync",
			zap.Int("deferred", missed))
	}

	addSet := make(map[string]struct{}, len(plan.ToAdd))
	for _, p := range plan.ToAdd {
		addSet[p] = struct{}{}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Deletions first: a path that disappears and reappears between two
		// runs is a fresh item, not an update.
		if len(plan.ToRemove) > 0 {
			if err := tx.Where("remote_path IN ?", plan.ToRemove).Delete(&models.Image{}).Error; err != nil {
				return fmt.Errorf("deleting removed images: %w", err)
			}
		}

		// Iterate folders in a stable order.
		folderPaths := make([]string, 0, len(remote))
		for p := range remote {
			folderPaths = append(folderPaths, p)
		}
		sort.Strings(folderPaths)

		for _, folderPath := range folderPaths {
			folder, err := upsertFolder(tx, folderPath)
			if err != nil {
				return err
			}

			for _, entry := range remote[folderPath] {
				if _, isNew := addSet[entry.Path]; !isNew {
					continue
				}
				url, ok := urls[entry.Path]
				if !ok {
					continue // link miss, retried next run
				}
				img := models.Image{
					RemotePath: entry.Path,
					URL:        url,
					FolderID:   folder.ID,
				}
				if err := tx.Create(&img).Error; err != nil {
					return fmt.Errorf("creating image %s: %w", entry.Path, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}

	s.logger.Info("Catalog synchronized with remote library")
	return plan, nil
}

// upsertFolder creates the folder on first sighting or refreshes its name.
func upsertFolder(tx *gorm.DB, folderPath string) (*models.Folder, error) {
	name := path.Base(folderPath)

	var folder models.Folder
	err := tx.Where("remote_path = ?", folderPath).First(&folder).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		folder = models.Folder{Name: name, RemotePath: folderPath}
		if err := tx.Create(&folder).Error; err != nil {
			return nil, fmt.Errorf("creating folder %s: %w", folderPath, err)
		}
	case err != nil:
		return nil, fmt.Errorf("loading folder %s: %w", folderPath, err)
	case folder.Name != name:
		if err := tx.Model(&folder).Update("name", name).Error; err != nil {
			return nil, fmt.Errorf("renaming folder %s: %w", folderPath, err)
		}
		folder.Name = name
	}
	return &folder, nil
}

// FolderSummary is a folder with its current image count.
type FolderSummary struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	RemotePath string `json:"remote_path"`
	ImageCount int    `json:"image_count"`
}

// Folders returns all catalog folders with their image counts.
func (s *Service) Folders(ctx context.Context) ([]FolderSummary, error) {
	var folders []FolderSummary
	err := s.db.WithContext(ctx).Model(&models.Folder{}).
		Select("folders.id, folders.name, folders.remote_path, count(images.id) AS image_count").
		Joins("LEFT JOIN images ON images.folder_id = folders.id").
		Group("folders.id").
		Order("folders.name").
		Scan(&folders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load folders: %w", err)
	}
	return folders, nil
}
