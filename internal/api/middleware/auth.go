package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rsaisankalp/ashram-assert/internal/auth"
	"github.com/rsaisankalp/ashram-assert/internal/domain"
)

type contextKey string

const (
	UserIDKey       contextKey = "user_id"
	SessionTokenKey contextKey = "session_token"
	RolesKey        contextKey = "roles"
)

// SessionStore resolves a live session; a nil result means the bearer's
// session is gone and the JWT no longer carries any authority.
type SessionStore interface {
	GetSession(token string) *domain.Session
}

// Auth validates the bearer JWT, resolves the wrapped session, and loads
// the session identity into the request context.
func Auth(jwtService *auth.JWTService, sessions SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			session := sessions.GetSession(claims.SessionToken)
			if session == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, UserIDKey, session.UserID)
			ctx = context.WithValue(ctx, SessionTokenKey, session.Token)
			ctx = context.WithValue(ctx, RolesKey, session.Roles)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

func GetSessionToken(ctx context.Context) string {
	if token, ok := ctx.Value(SessionTokenKey).(string); ok {
		return token
	}
	return ""
}

func GetRoles(ctx context.Context) []domain.Role {
	if roles, ok := ctx.Value(RolesKey).([]domain.Role); ok {
		return roles
	}
	return nil
}

// RequireRole gates a route on the session's role snapshot. Service-level
// checks still apply; this just fails fast.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			held := GetRoles(r.Context())
			for _, want := range roles {
				for _, have := range held {
					if have == want {
						next.ServeHTTP(w, r)
						return
					}
				}
			}
			http.Error(w, "Forbidden", http.StatusForbidden)
		})
	}
}
