package delivery

import (
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"image-rotator/core/notify/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Notifier, sqlmock.Sqlmock) {
	app := fiber.New()
	notifier := new(mocks.Notifier)
	db, sqlMock := setupMockDB(t)
	svc := NewService(db, notifier, zap.NewNop(), "Here is your daily image!")
	handler := NewHandler(svc, zap.NewNop())
	handler.RegisterRoutes(app)
	return app, notifier, sqlMock
}

func TestHandleSend(t *testing.T) {
	app, notifier, sqlMock := setupTestApp(t)

	sqlMock.ExpectQuery("SELECT (.+) FROM `images`").
		WillReturnRows(pickedImageRows())
	notifier.On("SendImage", mock.Anything, "+15551234567", mock.Anything, "https://storage.local/cat.jpg").
		Return("SM123", nil)
	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `delivery_logs`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	sqlMock.ExpectCommit()

	body := strings.NewReader(`{"to": "+15551234567", "folder": "pets"}`)
	req := httptest.NewRequest("POST", "/delivery/send", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "SM123", result["message_id"])
}

func TestHandleSend_MissingFields(t *testing.T) {
	app, _, _ := setupTestApp(t)

	body := strings.NewReader(`{"to": "+15551234567"}`)
	req := httptest.NewRequest("POST", "/delivery/send", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleSend_NoPick(t *testing.T) {
	app, _, sqlMock := setupTestApp(t)

	sqlMock.ExpectQuery("SELECT (.+) FROM `images`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "url", "folder_id"}))

	body := strings.NewReader(`{"to": "+15551234567", "folder": "unknown"}`)
	req := httptest.NewRequest("POST", "/delivery/send", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleCallback(t *testing.T) {
	app, _, sqlMock := setupTestApp(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery("SELECT (.+) FROM `delivery_logs`").
		WillReturnRows(deliveryLogRows("SENT"))
	sqlMock.ExpectExec("UPDATE `delivery_logs`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectQuery("SELECT (.+) FROM `histories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "image_id", "count", "month", "year"}))
	sqlMock.ExpectExec("INSERT INTO `histories`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	sqlMock.ExpectCommit()

	form := url.Values{}
	form.Set("MessageSid", "SM123")
	form.Set("MessageStatus", "delivered")
	req := httptest.NewRequest("POST", "/delivery/callback", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}

func TestHandleCallback_MissingFields(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/delivery/callback", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
