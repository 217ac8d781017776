package picker

import (
	"context"
	"fmt"
	"testing"

	"image-rotator/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRotationDB opens a named in-memory sqlite database so multi-run
// scenarios exercise real transactional state across PickDaily calls.
func setupRotationDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func seedFolder(t *testing.T, db *gorm.DB, name string, images int) {
	folder := models.Folder{Name: name, RemotePath: "library/" + name}
	require.NoError(t, db.Create(&folder).Error)
	for i := 1; i <= images; i++ {
		img := models.Image{
			RemotePath: fmt.Sprintf("library/%s/%d.jpg", name, i),
			URL:        fmt.Sprintf("https://storage.local/%s/%d.jpg", name, i),
			FolderID:   folder.ID,
		}
		require.NoError(t, db.Create(&img).Error)
	}
}

func todaysPickIDs(t *testing.T, db *gorm.DB) []int {
	var ids []int
	require.NoError(t, db.Model(&models.Image{}).
		Where("is_todays_pick = ?", true).
		Order("id").
		Pluck("id", &ids).Error)
	return ids
}

// Seven images, three runs: the first two runs pick disjoint triples, the
// third finds only one unshown image left and resets the cycle before
// picking a full triple again.
func TestPickDaily_SevenImageRotation(t *testing.T) {
	db := setupRotationDB(t, "rotation_seven")
	seedFolder(t, db, "pets", 7)
	svc := NewService(db, zap.NewNop(), identityShuffler{})
	ctx := context.Background()

	require.NoError(t, svc.PickDaily(ctx))
	day1 := todaysPickIDs(t, db)
	require.Len(t, day1, PickQuota)

	require.NoError(t, svc.PickDaily(ctx))
	day2 := todaysPickIDs(t, db)
	require.Len(t, day2, PickQuota)
	for _, id := range day2 {
		assert.NotContains(t, day1, id)
	}

	require.NoError(t, svc.PickDaily(ctx))
	day3 := todaysPickIDs(t, db)
	require.Len(t, day3, PickQuota)

	// After the reset run exactly the picked triple is marked shown again
	var shown int64
	require.NoError(t, db.Model(&models.Image{}).
		Where("was_shown = ?", true).Count(&shown).Error)
	assert.Equal(t, int64(PickQuota), shown)
}

// A folder below the quota must keep yielding all of its images every run,
// not just on the first day.
func TestPickDaily_SmallFolderEveryRun(t *testing.T) {
	db := setupRotationDB(t, "rotation_small")
	seedFolder(t, db, "minis", 2)
	svc := NewService(db, zap.NewNop(), identityShuffler{})
	ctx := context.Background()

	require.NoError(t, svc.PickDaily(ctx))
	require.Len(t, todaysPickIDs(t, db), 2)

	require.NoError(t, svc.PickDaily(ctx))
	assert.Len(t, todaysPickIDs(t, db), 2)
}

// Total picks across the catalog equal the sum of min(quota, folder size).
func TestPickDaily_SingleDayExclusivity(t *testing.T) {
	db := setupRotationDB(t, "rotation_exclusivity")
	seedFolder(t, db, "pets", 5)
	seedFolder(t, db, "minis", 2)
	seedFolder(t, db, "void", 0)
	svc := NewService(db, zap.NewNop(), identityShuffler{})
	ctx := context.Background()

	for run := 0; run < 3; run++ {
		require.NoError(t, svc.PickDaily(ctx))
		assert.Len(t, todaysPickIDs(t, db), PickQuota+2)
	}
}
