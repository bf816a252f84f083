package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/waterlog-app/waterlog/internal/domain"
	"github.com/waterlog-app/waterlog/internal/dto"
	"github.com/waterlog-app/waterlog/internal/service/authservice"
	pkgauth "github.com/waterlog-app/waterlog/pkg/auth"
	"github.com/waterlog-app/waterlog/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=mock_service.go -package=auth

type Service interface {
	Register(ctx context.Context, login, password string) (*domain.User, error)
	Login(ctx context.Context, login, password string) (string, error)
	CheckLogin(token string) (string, error)
	Logout(token string)
}

type AuthHandler struct {
	authService Service
	sessionTTL  time.Duration
}

func New(authService Service, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessionTTL:  sessionTTL,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new user account with username and password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing username or password"
//	@Failure		409		{object}	utils.Response	"User already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	_, err = h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrEmptyCredentials):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, authservice.ErrLoginTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message: "User successfully registered",
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with a user account; the session token is set as an HttpOnly cookie
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing username or password"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrEmptyCredentials):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, authservice.ErrInvalidCredentials):
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     pkgauth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message:  "User successfully authenticated",
		Username: req.Username,
	})
}

// CheckLogin godoc
//
//	@Summary		Check login state
//	@Description	Report whether the request carries a live session; a live session is refreshed
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.CheckLoginResponseDTO
//	@Failure		401	{object}	dto.CheckLoginResponseDTO	"No live session"
//	@Router			/api/check_login [get]
func (h *AuthHandler) CheckLogin(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(pkgauth.CookieName)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusUnauthorized, dto.CheckLoginResponseDTO{LoggedIn: false})
		return
	}
	login, err := h.authService.CheckLogin(cookie.Value)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusUnauthorized, dto.CheckLoginResponseDTO{LoggedIn: false})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CheckLoginResponseDTO{
		LoggedIn: true,
		Username: login,
	})
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Remove the session and clear the cookie; logging out without a session is not an error
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.LogoutResponseDTO
//	@Router			/api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(pkgauth.CookieName); err == nil {
		h.authService.Logout(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     pkgauth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.RespondWithJSON(w, http.StatusOK, dto.LogoutResponseDTO{
		Message: "Logged out",
	})
}
