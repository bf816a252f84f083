package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/waterlog-app/waterlog/docs"
	"github.com/waterlog-app/waterlog/internal/config"
	authhandlers "github.com/waterlog-app/waterlog/internal/handlers/auth"
	intakehandlers "github.com/waterlog-app/waterlog/internal/handlers/intake"
	"github.com/waterlog-app/waterlog/internal/service"
	pkgauth "github.com/waterlog-app/waterlog/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	CheckLogin(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type IntakeHandler interface {
	AddIntake(w http.ResponseWriter, r *http.Request)
	GetUserData(w http.ResponseWriter, r *http.Request)
	GetAllUsersData(w http.ResponseWriter, r *http.Request)
	GetTotal(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	IntakeHandler IntakeHandler

	sessions  pkgauth.TokenAuthenticator
	staticDir string
}

func New(s *service.Services, sessions pkgauth.TokenAuthenticator, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService, cfg.SessionTTL),
		IntakeHandler: intakehandlers.New(s.IntakeService),
		sessions:      sessions,
		staticDir:     cfg.StaticDir,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/", h.serveIndex)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticDir))))

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
		r.Get("/check_login", h.AuthHandler.CheckLogin)
		r.Post("/logout", h.AuthHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(pkgauth.Middleware(h.sessions))
			r.Post("/add_water", h.IntakeHandler.AddIntake)
			r.Get("/get_user_data", h.IntakeHandler.GetUserData)
			r.Get("/get_all_users_data", h.IntakeHandler.GetAllUsersData)
			r.Get("/get_total", h.IntakeHandler.GetTotal)
		})
	})

	return r
}

func (h *Handlers) serveIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}
