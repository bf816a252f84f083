package auth

import (
	"context"
	"net/http"

	"github.com/waterlog-app/waterlog/internal/session"
	"github.com/waterlog-app/waterlog/pkg/utils"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
	LoginKey  ContextKey = "login"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "token"

type TokenAuthenticator interface {
	Authenticate(token string) (*session.Identity, error)
}

// Middleware resolves the session cookie to an identity and injects it
// into the request context. Requests without a live session get a 401.
func Middleware(sessions TokenAuthenticator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			identity, err := sessions.Authenticate(cookie.Value)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, identity.UserID)
			ctx = context.WithValue(ctx, LoginKey, identity.Login)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
