// Package mocks provides testify mocks for the web layer's service
// dependencies.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ecilanotrub/users-microservice/internal/core/domain"
)

// UserService is a mock implementation of the web layer's UserService contract.
type UserService struct {
	mock.Mock
}

func (m *UserService) CreateUser(ctx context.Context, username string) (domain.ServiceResponse, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.ServiceResponse), args.Error(1)
}

func (m *UserService) GetAllUsers(ctx context.Context) ([]domain.UserResponse, error) {
	args := m.Called(ctx)
	var users []domain.UserResponse
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.UserResponse)
	}
	return users, args.Error(1)
}

func (m *UserService) UpdateUser(ctx context.Context, id int, username string) (domain.ServiceResponse, error) {
	args := m.Called(ctx, id, username)
	return args.Get(0).(domain.ServiceResponse), args.Error(1)
}

func (m *UserService) DeleteUser(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
