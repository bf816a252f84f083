package service

import (
	"github.com/waterlog-app/waterlog/internal/handlers/auth"
	"github.com/waterlog-app/waterlog/internal/handlers/intake"

	pkgauth "github.com/waterlog-app/waterlog/pkg/auth"

	"github.com/waterlog-app/waterlog/internal/repo"
	"github.com/waterlog-app/waterlog/internal/service/authservice"
	"github.com/waterlog-app/waterlog/internal/service/intakeservice"
)

type Services struct {
	AuthService   auth.Service
	IntakeService intake.Service
}

func New(repo *repo.Repositories, sessions authservice.SessionDirectory, displayNames map[string]string) *Services {
	intakeService := intakeservice.New(repo.IntakeRepo, displayNames)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, sessions)

	return &Services{
		AuthService:   authService,
		IntakeService: intakeService,
	}
}
