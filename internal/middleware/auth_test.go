package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/auth"
	"app/internal/model"
	"app/internal/repository"

	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	users map[string]*model.User
}

func (r *stubUserRepo) Create(ctx context.Context, u *model.User) error { return nil }

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, repository.ErrNotFound
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func newTestAuth(users map[string]*model.User) (*Auth, *auth.Signer) {
	signer := auth.NewSigner("test-secret", time.Hour)
	return NewAuth(signer, &stubUserRepo{users: users}), signer
}

func TestRequireAuthMissingHeader(t *testing.T) {
	mw, _ := newTestAuth(nil)

	rec := httptest.NewRecorder()
	mw.RequireAuth(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	mw, _ := newTestAuth(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	mw.RequireAuth(okHandler()).ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	user := &model.User{ID: "u1", Email: "a@example.com", Role: model.RoleStudent}
	mw, _ := newTestAuth(map[string]*model.User{"u1": user})

	expired := auth.NewSigner("test-secret", -time.Minute)
	token, err := expired.Sign(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mw.RequireAuth(okHandler()).ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthDeletedUser(t *testing.T) {
	user := &model.User{ID: "gone", Email: "a@example.com", Role: model.RoleStudent}
	mw, signer := newTestAuth(map[string]*model.User{})

	token, err := signer.Sign(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mw.RequireAuth(okHandler()).ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthStoresUserInContext(t *testing.T) {
	user := &model.User{ID: "u1", Email: "a@example.com", Role: model.RoleStudent}
	mw, signer := newTestAuth(map[string]*model.User{"u1": user})

	token, err := signer.Sign(user)
	require.NoError(t, err)

	var got *model.User
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = UserFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mw.RequireAuth(inner).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	require.Equal(t, "u1", got.ID)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		role    model.Role
		allowed []model.Role
		status  int
	}{
		{"admin allowed", model.RoleAdmin, []model.Role{model.RoleAdmin}, http.StatusOK},
		{"student refused admin route", model.RoleStudent, []model.Role{model.RoleAdmin}, http.StatusForbidden},
		{"instructor refused student route", model.RoleInstructor, []model.Role{model.RoleStudent}, http.StatusForbidden},
		{"admin refused student route", model.RoleAdmin, []model.Role{model.RoleStudent}, http.StatusForbidden},
		{"unknown role always refused", model.Role("superuser"), []model.Role{model.RoleAdmin, model.RoleStudent}, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &model.User{ID: "u1", Email: "a@example.com", Role: tt.role}
			mw, signer := newTestAuth(map[string]*model.User{"u1": user})

			token, err := signer.Sign(user)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			mw.RequireAuth(mw.RequireRole(tt.allowed...)(okHandler())).ServeHTTP(rec, req)
			require.Equal(t, tt.status, rec.Code)
		})
	}
}
