package report

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

// mockSink is a mock implementation of Sink.
type mockSink struct {
	mock.Mock
}

func (m *mockSink) Export(ctx context.Context, name string, rows []Row) error {
	args := m.Called(ctx, name, rows)
	return args.Error(0)
}

func historyRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"url", "path", "folder", "count"}).
		AddRow("https://storage.local/cat.jpg", "library/pets/cat.jpg", "pets", 5).
		AddRow("https://storage.local/bmw.jpg", "library/cars/bmw.jpg", "cars", 2)
}

func TestMonthlyReport(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	svc := NewService(db, zap.NewNop(), nil)

	sqlMock.ExpectQuery("SELECT (.+) FROM `histories`").
		WillReturnRows(historyRows())

	rows, err := svc.MonthlyReport(context.Background(), "August", 2026)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	// Ranks follow the count-descending query order
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, "pets", rows[0].Folder)
	assert.Equal(t, "cat.jpg", rows[0].Filename)
	assert.Equal(t, 5, rows[0].Count)
	assert.Equal(t, "August 2026", rows[0].Period)
	assert.Equal(t, 2, rows[1].Rank)
	assert.Equal(t, "cars", rows[1].Folder)
}

func TestMonthlyReport_EmptyPeriod(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	svc := NewService(db, zap.NewNop(), nil)

	sqlMock.ExpectQuery("SELECT (.+) FROM `histories`").
		WillReturnRows(sqlmock.NewRows([]string{"url", "path", "folder", "count"}))

	rows, err := svc.MonthlyReport(context.Background(), "January", 2026)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestExport(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	sink := new(mockSink)
	svc := NewService(db, zap.NewNop(), sink)

	sqlMock.ExpectQuery("SELECT (.+) FROM `histories`").
		WillReturnRows(historyRows())
	sink.On("Export", mock.Anything, "daily-image-report-2026-August", mock.Anything).Return(nil)

	name, err := svc.Export(context.Background(), "August", 2026)
	require.NoError(t, err)
	assert.Equal(t, "daily-image-report-2026-August", name)
	sink.AssertExpectations(t)
}

func TestExport_NoSink(t *testing.T) {
	db, _ := setupMockDB(t)
	svc := NewService(db, zap.NewNop(), nil)

	_, err := svc.Export(context.Background(), "August", 2026)
	assert.Error(t, err)
}

func TestExport_SinkFailure(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	sink := new(mockSink)
	svc := NewService(db, zap.NewNop(), sink)

	sqlMock.ExpectQuery("SELECT (.+) FROM `histories`").
		WillReturnRows(historyRows())
	sink.On("Export", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := svc.Export(context.Background(), "August", 2026)
	assert.Error(t, err)
}
