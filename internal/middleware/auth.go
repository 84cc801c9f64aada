package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"app/internal/auth"
	"app/internal/model"
	"app/internal/repository"
)

// Injected key type to avoid context collisions
type contextKey string

const UserContextKey = contextKey("user")

// Auth gates endpoints on a valid bearer token and, optionally, on role.
type Auth struct {
	signer *auth.Signer
	users  repository.UserRepository
}

func NewAuth(signer *auth.Signer, users repository.UserRepository) *Auth {
	return &Auth{signer: signer, users: users}
}

// RequireAuth verifies the bearer token and resolves the user row. A token
// whose user has since been deleted is rejected. The resolved *model.User is
// stored in the request context.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthorized(w, "Authorization header missing")
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(w, "Invalid authorization header")
			return
		}

		claims, err := a.signer.Parse(parts[1])
		if err != nil {
			unauthorized(w, "Invalid token")
			return
		}

		user, err := a.users.GetByID(r.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				unauthorized(w, "Invalid token")
				return
			}
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole allows only the given roles through. It must run inside
// RequireAuth. Matching is exhaustive over the role enumeration; an unknown
// role is always refused.
func (a *Auth) RequireRole(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				unauthorized(w, "Authentication required")
				return
			}
			if !roleAllowed(user.Role, roles) {
				forbidden(w, "Insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext returns the authenticated user placed by RequireAuth.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*model.User)
	return user, ok
}

func roleAllowed(role model.Role, allowed []model.Role) bool {
	switch role {
	case model.RoleAdmin, model.RoleInstructor, model.RoleStudent:
		for _, a := range allowed {
			if role == a {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	writeMessage(w, http.StatusUnauthorized, msg)
}

func forbidden(w http.ResponseWriter, msg string) {
	writeMessage(w, http.StatusForbidden, msg)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
