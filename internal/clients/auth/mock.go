package auth

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/models"
)

// Interface guard.
var _ ClientInterface = (*MockClient)(nil)

// MockClient provides a mock implementation of ClientInterface for testing.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetUser(ctx context.Context, uid string) (models.User, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockClient) UpdatePassword(ctx context.Context, uid, password string) error {
	args := m.Called(ctx, uid, password)
	return args.Error(0)
}
