package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tasktracker/internal/model"
)

func TestUserService_GetUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2, Name: "Ana", Email: "ana@example.com", PasswordHash: "hash"}, nil)

	service := NewUserService(mockRepo, nil)
	user, err := service.GetUser(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.Empty(t, user.PasswordHash)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUserNotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)

	service := NewUserService(mockRepo, nil)
	user, err := service.GetUser(context.Background(), 2)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, user)
}
