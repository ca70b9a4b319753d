package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tasktracker/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		nameField     string
		setupMock     func(*MockUserRepository)
		expectedError error
		anyError      bool
	}{
		{
			name:      "successful registration",
			email:     "test@example.com",
			password:  "password123",
			nameField: "Test User",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:      "user already exists",
			email:     "existing@example.com",
			password:  "password123",
			nameField: "Existing User",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{ID: 1, Email: "existing@example.com"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
		{
			name:      "lookup failure",
			email:     "test@example.com",
			password:  "password123",
			nameField: "Test User",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, errors.New("db down"))
			},
			anyError: true,
		},
		{
			name:      "password over 72 bytes",
			email:     "test@example.com",
			password:  strings.Repeat("€", 25),
			nameField: "Test User",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrPasswordTooLong,
		},
		{
			name:      "create failure",
			email:     "test@example.com",
			password:  "password123",
			nameField: "Test User",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(errors.New("db down"))
			},
			anyError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, new(MockSessions))
			user, err := service.Register(context.Background(), tt.email, tt.nameField, tt.password)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			case tt.anyError:
				assert.Error(t, err)
				assert.Nil(t, user)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.nameField, user.Name)
				assert.NotEqual(t, tt.password, user.PasswordHash)
				assert.True(t, user.CheckPassword(tt.password))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	stored := &model.User{ID: 8, Email: "test@example.com", Name: "Test"}
	require.NoError(t, stored.SetPassword("password123"))
	sessionCookie := &http.Cookie{Name: "session", Value: "token"}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockSessions)
		expectedError error
		anyError      bool
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mSess *MockSessions) {
				mRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(stored, nil)
				mSess.On("Start", mock.Anything, uint(8)).Return(sessionCookie, nil)
			},
		},
		{
			name:     "invalid credentials - user not found",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mSess *MockSessions) {
				mRepo.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "invalid credentials - wrong password",
			email:    "test@example.com",
			password: "wrong",
			setupMock: func(mRepo *MockUserRepository, mSess *MockSessions) {
				mRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(stored, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "session store failure",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mSess *MockSessions) {
				mRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(stored, nil)
				mSess.On("Start", mock.Anything, uint(8)).Return(nil, errors.New("redis down"))
			},
			anyError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockSessions := new(MockSessions)
			tt.setupMock(mockRepo, mockSessions)

			service := NewAuthService(mockRepo, mockSessions)
			cookie, user, err := service.Login(context.Background(), tt.email, tt.password)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, cookie)
				assert.Nil(t, user)
			case tt.anyError:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrInvalidCredentials)
			default:
				require.NoError(t, err)
				assert.Equal(t, sessionCookie, cookie)
				assert.Equal(t, uint(8), user.ID)
			}

			mockRepo.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	cleared := &http.Cookie{Name: "session", MaxAge: -1}
	mockSessions := new(MockSessions)
	mockSessions.On("End", mock.Anything, "sess-1").Return(cleared, nil)

	service := NewAuthService(new(MockUserRepository), mockSessions)
	cookie, err := service.Logout(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.Equal(t, cleared, cookie)
	mockSessions.AssertExpectations(t)
}

func TestAuthService_LogoutFailure(t *testing.T) {
	mockSessions := new(MockSessions)
	mockSessions.On("End", mock.Anything, "sess-1").Return(nil, errors.New("redis down"))

	service := NewAuthService(new(MockUserRepository), mockSessions)
	cookie, err := service.Logout(context.Background(), "sess-1")

	assert.Error(t, err)
	assert.Nil(t, cookie)
}
