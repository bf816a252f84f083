package authservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/waterlog-app/waterlog/internal/domain"
	"github.com/waterlog-app/waterlog/internal/session"
	"github.com/waterlog-app/waterlog/pkg/auth"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

var (
	ErrEmptyCredentials   = errors.New("username and password are required")
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type SessionDirectory interface {
	Login(userID int, login string) string
	Authenticate(token string) (*session.Identity, error)
	Logout(token string)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	sessions    SessionDirectory
}

func New(repo Repo, hashService auth.HashServiceInterface, sessions SessionDirectory) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		sessions:    sessions,
	}
}

func (s *Service) Register(ctx context.Context, login, password string) (*domain.User, error) {
	if login == "" || password == "" {
		return nil, ErrEmptyCredentials
	}
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

// Login verifies the credentials and opens a new session, returning its
// token. Every call issues a fresh token.
func (s *Service) Login(ctx context.Context, login, password string) (string, error) {
	if login == "" || password == "" {
		return "", ErrEmptyCredentials
	}
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return "", ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return "", ErrInvalidCredentials
	}
	token := s.sessions.Login(user.ID, user.Login)
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return token, nil
}

// CheckLogin resolves a session token to its login, refreshing the
// session on success.
func (s *Service) CheckLogin(token string) (string, error) {
	identity, err := s.sessions.Authenticate(token)
	if err != nil {
		return "", err
	}
	return identity.Login, nil
}

func (s *Service) Logout(token string) {
	s.sessions.Logout(token)
}
