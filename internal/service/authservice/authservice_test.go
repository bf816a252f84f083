package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/waterlog-app/waterlog/internal/domain"
	"github.com/waterlog-app/waterlog/internal/session"
	"github.com/waterlog-app/waterlog/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockSessionDirectory) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockRepo(ctrl)
	sessions := NewMockSessionDirectory(ctrl)
	service := New(userRepo, &auth.HashService{}, sessions)
	defer ctrl.Finish()
	return service, userRepo, sessions
}

func TestRegister(t *testing.T) {
	service, userRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful registration",
			login:    "alice",
			password: "password123",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(nil, nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) (*domain.User, error) {
						assert.Equal(t, "alice", user.Login)
						assert.True(t, (&auth.HashService{}).ComparePassword(user.PasswordHash, "password123"))
						user.ID = 1
						return user, nil
					})
			},
			expectedError: nil,
		},
		{
			name:          "Empty login",
			login:         "",
			password:      "password123",
			prepareMock:   func() {},
			expectedError: ErrEmptyCredentials,
		},
		{
			name:          "Empty password",
			login:         "alice",
			password:      "",
			prepareMock:   func() {},
			expectedError: ErrEmptyCredentials,
		},
		{
			name:     "Login already taken",
			login:    "alice",
			password: "password123",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.User{ID: 1, Login: "alice"}, nil)
			},
			expectedError: ErrLoginTaken,
		},
		{
			name:     "Repo lookup error",
			login:    "alice",
			password: "password123",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "alice", user.Login)
				assert.Equal(t, 1, user.ID)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	service, userRepo, sessions := NewMock(t)

	hashedPassword, err := (&auth.HashService{}).HashPassword("password123")
	assert.NoError(t, err)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name:     "Successful login",
			login:    "alice",
			password: "password123",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.User{
					ID:           1,
					Login:        "alice",
					PasswordHash: hashedPassword,
				}, nil)
				sessions.EXPECT().Login(1, "alice").Return("session-token")
			},
			expectedToken: "session-token",
			expectedError: nil,
		},
		{
			name:          "Empty credentials",
			login:         "",
			password:      "",
			prepareMock:   func() {},
			expectedError: ErrEmptyCredentials,
		},
		{
			name:     "Unknown user",
			login:    "mallory",
			password: "password123",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "mallory").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			login:    "alice",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.User{
					ID:           1,
					Login:        "alice",
					PasswordHash: hashedPassword,
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.Login(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestCheckLogin(t *testing.T) {
	service, _, sessions := NewMock(t)

	tests := []struct {
		name          string
		token         string
		prepareMock   func()
		expectedLogin string
		expectedError error
	}{
		{
			name:  "Valid token",
			token: "session-token",
			prepareMock: func() {
				sessions.EXPECT().Authenticate("session-token").Return(&session.Identity{UserID: 1, Login: "alice"}, nil)
			},
			expectedLogin: "alice",
		},
		{
			name:  "Unknown token",
			token: "bad-token",
			prepareMock: func() {
				sessions.EXPECT().Authenticate("bad-token").Return(nil, session.ErrUnauthenticated)
			},
			expectedError: session.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			login, err := service.CheckLogin(tt.token)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedLogin, login)
			}
		})
	}
}

func TestLogout(t *testing.T) {
	service, _, sessions := NewMock(t)

	sessions.EXPECT().Logout("session-token")
	service.Logout("session-token")
}
