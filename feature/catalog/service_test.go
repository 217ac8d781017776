package catalog

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

// mockLibrary is a mock implementation of Library.
type mockLibrary struct {
	mock.Mock
}

func (m *mockLibrary) ListImages(ctx context.Context, root string) (map[string][]Entry, error) {
	args := m.Called(ctx, root)
	if listing, ok := args.Get(0).(map[string][]Entry); ok {
		return listing, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLibrary) ResolvePublicURLs(ctx context.Context, paths []string) (map[string]string, error) {
	args := m.Called(ctx, paths)
	if urls, ok := args.Get(0).(map[string]string); ok {
		return urls, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestService_Sync_NoChanges(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	lib := new(mockLibrary)
	svc := NewService(lib, db, zap.NewNop(), "library")

	lib.On("ListImages", mock.Anything, "library").Return(map[string][]Entry{
		"library/pets": {{Path: "library/pets/cat.jpg", Name: "cat.jpg"}},
	}, nil)

	sqlMock.ExpectQuery("SELECT (.+) FROM `images`").
		WillReturnRows(sqlmock.NewRows([]string{"remote_path"}).AddRow("library/pets/cat.jpg"))

	plan, err := svc.Sync(context.Background())
	require.NoError(t, err)

	assert.True(t, plan.Empty())
	// No links resolved and no transaction opened for an empty plan
	lib.AssertNotCalled(t, "ResolvePublicURLs", mock.Anything, mock.Anything)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestService_Sync_AddAndRemove(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	lib := new(mockLibrary)
	svc := NewService(lib, db, zap.NewNop(), "library")

	lib.On("ListImages", mock.Anything, "library").Return(map[string][]Entry{
		"library/pets": {{Path: "library/pets/new.jpg", Name: "new.jpg"}},
	}, nil)
	lib.On("ResolvePublicURLs", mock.Anything, []string{"library/pets/new.jpg"}).Return(map[string]string{
		"library/pets/new.jpg": "https://storage.local/new.jpg",
	}, nil)

	// Current catalog holds one image that vanished remotely
	sqlMock.ExpectQuery("SELECT (.+) FROM `images`").
		WillReturnRows(sqlmock.NewRows([]string{"remote_path"}).AddRow("library/pets/gone.jpg"))

	sqlMock.ExpectBegin()
	// Deletions run before insertions
	sqlMock.ExpectExec("DELETE FROM `images`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Folder is created on first sighting
	sqlMock.ExpectQuery("SELECT (.+) FROM `folders`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "remote_path"}))
	sqlMock.ExpectExec("INSERT INTO `folders`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	sqlMock.ExpectExec("INSERT INTO `images`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	sqlMock.ExpectCommit()

	plan, err := svc.Sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"library/pets/new.jpg"}, plan.ToAdd)
	assert.Equal(t, []string{"library/pets/gone.jpg"}, plan.ToRemove)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestService_Sync_LinkMissDeferred(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	lib := new(mockLibrary)
	svc := NewService(lib, db, zap.NewNop(), "library")

	lib.On("ListImages", mock.Anything, "library").Return(map[string][]Entry{
		"library/pets": {{Path: "library/pets/new.jpg", Name: "new.jpg"}},
	}, nil)
	// Link generation failed for the only new image
	lib.On("ResolvePublicURLs", mock.Anything, []string{"library/pets/new.jpg"}).
		Return(map[string]string{}, nil)

	sqlMock.ExpectQuery("SELECT (.+) FROM `images`").
		WillReturnRows(sqlmock.NewRows([]string{"remote_path"}))

	sqlMock.ExpectBegin()
	// Folder is still upserted, but the image without a link is skipped
	sqlMock.ExpectQuery("SELECT (.+) FROM `folders`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "remote_path"}))
	sqlMock.ExpectExec("INSERT INTO `folders`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	sqlMock.ExpectCommit()

	plan, err := svc.Sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, plan.Summary.Additions)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestService_Sync_ListFailure(t *testing.T) {
	db, _ := setupMockDB(t)
	lib := new(mockLibrary)
	svc := NewService(lib, db, zap.NewNop(), "library")

	lib.On("ListImages", mock.Anything, "library").Return(nil, assert.AnError)

	_, err := svc.Sync(context.Background())
	assert.ErrorIs(t, err, ErrSyncFailed)
}

func TestService_Folders(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	svc := NewService(new(mockLibrary), db, zap.NewNop(), "library")

	sqlMock.ExpectQuery("SELECT (.+) FROM `folders`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "remote_path", "image_count"}).
			AddRow(2, "cars", "library/cars", 4).
			AddRow(1, "pets", "library/pets", 7))

	folders, err := svc.Folders(context.Background())
	require.NoError(t, err)

	require.Len(t, folders, 2)
	assert.Equal(t, "cars", folders[0].Name)
	assert.Equal(t, 7, folders[1].ImageCount)
}
