package picker

import (
	"context"
	"errors"
	"fmt"

	"image-rotator/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PickQuota is the number of images selected per folder per day.
const PickQuota = 3

// pickLockName serializes concurrent selection runs on MySQL. Two
// interleaved runs could both observe the same unshown pool and double-apply
// a cycle reset, so at most one run may proceed at a time.
const pickLockName = "image_rotator.daily_pick"

// pickLockTimeoutSeconds is how long a run waits for the advisory lock.
const pickLockTimeoutSeconds = 10

// ErrSelectionFailed marks an aborted daily selection. Nothing is partially
// applied; was_shown and is_todays_pick state is untouched on failure.
var ErrSelectionFailed = errors.New("daily selection failed")

// Service implements the daily image selection.
type Service struct {
	db       *gorm.DB
	logger   *zap.Logger
	shuffler Shuffler
}

// NewService creates a new picker service. A nil shuffler selects the
// default uniform random shuffle.
func NewService(db *gorm.DB, logger *zap.Logger, shuffler Shuffler) *Service {
	if shuffler == nil {
		shuffler = randShuffler{}
	}
	return &Service{db: db, logger: logger, shuffler: shuffler}
}

// PickDaily selects up to PickQuota images per folder for today, inside one
// transaction:
//
//  1. Clear is_todays_pick everywhere, so no stale picks survive a run.
//  2. Per folder, load the unshown pool. When the pool drops below what the
//     folder can supply for a day (the quota, or the folder's total when
//     smaller), the cycle is exhausted: reset was_shown for the whole folder
//     and reload.
//  3. Shuffle the pool uniformly and take the first min(quota, len) images,
//     marking them is_todays_pick and was_shown in one batched update.
//
// Folders with fewer than the quota of images simply yield what they have.
func (s *Service) PickDaily(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := acquirePickLock(tx); err != nil {
			return err
		}
		defer releasePickLock(tx)

		// Global un-pick pass before any folder is processed.
		if err := tx.Model(&models.Image{}).
			Where("is_todays_pick = ?", true).
			Update("is_todays_pick", false).Error; err != nil {
			return fmt.Errorf("clearing previous picks: %w", err)
		}

		var folders []models.Folder
		if err := tx.Order("id").Find(&folders).Error; err != nil {
			return fmt.Errorf("loading folders: %w", err)
		}

		for _, folder := range folders {
			if err := s.pickForFolder(tx, folder); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSelectionFailed, err)
	}

	s.logger.Info("Daily images selected for all folders")
	return nil
}

func (s *Service) pickForFolder(tx *gorm.DB, folder models.Folder) error {
	var total int64
	if err := tx.Model(&models.Image{}).
		Where("folder_id = ?", folder.ID).
		Count(&total).Error; err != nil {
		return fmt.Errorf("counting images in %s: %w", folder.Name, err)
	}
	if total == 0 {
		return nil
	}

	var pool []models.Image
	if err := tx.Where("folder_id = ? AND was_shown = ?", folder.ID, false).
		Find(&pool).Error; err != nil {
		return fmt.Errorf("loading unshown pool for %s: %w", folder.Name, err)
	}

	// Cycle reset: the unshown pool can no longer supply a full day's
	// picks, so the whole folder starts a new cycle. Folders below the
	// quota still rotate; they just yield fewer images per day.
	need := PickQuota
	if total < int64(PickQuota) {
		need = int(total)
	}
	if len(pool) < need {
		s.logger.Info("Resetting image cycle", zap.String("folder", folder.Name))
		if err := tx.Model(&models.Image{}).
			Where("folder_id = ?", folder.ID).
			Update("was_shown", false).Error; err != nil {
			return fmt.Errorf("resetting cycle for %s: %w", folder.Name, err)
		}
		pool = pool[:0]
		if err := tx.Where("folder_id = ?", folder.ID).Find(&pool).Error; err != nil {
			return fmt.Errorf("reloading pool for %s: %w", folder.Name, err)
		}
	}

	s.shuffler.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	n := PickQuota
	if len(pool) < n {
		n = len(pool)
	}
	if n == 0 {
		return nil
	}

	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = pool[i].ID
	}

	if err := tx.Model(&models.Image{}).
		Where("id IN ?", ids).
		Updates(map[string]any{"is_todays_pick": true, "was_shown": true}).Error; err != nil {
		return fmt.Errorf("marking picks for %s: %w", folder.Name, err)
	}
	return nil
}

func acquirePickLock(tx *gorm.DB) error {
	if tx.Dialector.Name() != "mysql" {
		return nil
	}
	var got int
	if err := tx.Raw("SELECT GET_LOCK(?, ?)", pickLockName, pickLockTimeoutSeconds).Scan(&got).Error; err != nil {
		return fmt.Errorf("acquiring selection lock: %w", err)
	}
	if got != 1 {
		return errors.New("another selection run is in progress")
	}
	return nil
}

func releasePickLock(tx *gorm.DB) {
	if tx.Dialector.Name() != "mysql" {
		return
	}
	var released int
	_ = tx.Raw("SELECT RELEASE_LOCK(?)", pickLockName).Scan(&released).Error
}

// Pick is one of today's picks as exposed to callers. An empty URL marks a
// padding slot with no image behind it; callers must not dereference it.
type Pick struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// TodaysPicksByFolder returns today's picks for the named folder, always
// exactly PickQuota entries. Folders with fewer picks (or unknown names)
// are padded with empty placeholder slots rather than erroring.
func (s *Service) TodaysPicksByFolder(ctx context.Context, name string) ([]Pick, error) {
	var picks []Pick
	err := s.db.WithContext(ctx).Model(&models.Image{}).
		Select("images.url, images.remote_path AS path").
		Joins("JOIN folders ON folders.id = images.folder_id").
		Where("images.is_todays_pick = ? AND folders.name = ?", true, name).
		Order("images.id").
		Scan(&picks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load picks for %s: %w", name, err)
	}

	for len(picks) < PickQuota {
		picks = append(picks, Pick{})
	}
	return picks[:PickQuota], nil
}
