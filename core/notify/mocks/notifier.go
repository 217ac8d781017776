package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Notifier is a mock implementation of notify.Notifier
type Notifier struct {
	mock.Mock
}

func (m *Notifier) SendImage(ctx context.Context, to, body, mediaURL string) (string, error) {
	args := m.Called(ctx, to, body, mediaURL)
	return args.String(0), args.Error(1)
}
