package repo

import (
	"github.com/waterlog-app/waterlog/internal/pg"
	intakerepo "github.com/waterlog-app/waterlog/internal/repo/intake-repo"
	userrepo "github.com/waterlog-app/waterlog/internal/repo/user-repo"
	"github.com/waterlog-app/waterlog/internal/service/authservice"
	"github.com/waterlog-app/waterlog/internal/service/intakeservice"
)

type Repositories struct {
	UserRepo   authservice.Repo
	IntakeRepo intakeservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	intakeRepo := intakerepo.New(conn, txManager)

	return &Repositories{
		UserRepo:   userRepo,
		IntakeRepo: intakeRepo,
	}
}
