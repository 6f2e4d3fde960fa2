package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-booking/config"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreAccessToken(ctx context.Context, userID int, tokenID string, ttl time.Duration) error {
	return m.Called(ctx, userID, tokenID, ttl).Error(0)
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, userID int, tokenID string, ttl time.Duration) error {
	return m.Called(ctx, userID, tokenID, ttl).Error(0)
}

func (m *MockTokenStore) IsAccessTokenValid(ctx context.Context, userID int, tokenID string) (bool, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenStore) ConsumeRefreshToken(ctx context.Context, userID int, tokenID string) (bool, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenStore) RevokeAccessToken(ctx context.Context, userID int, tokenID string) error {
	return m.Called(ctx, userID, tokenID).Error(0)
}

func (m *MockTokenStore) RevokeAllUserTokens(ctx context.Context, userID int) error {
	return m.Called(ctx, userID).Error(0)
}

func newTestJWT() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestAuthenticate(t *testing.T) {
	jwtService := newTestJWT()
	access, accessID, err := jwtService.GenerateAccessToken(jwt.Subject{UserID: 7, Username: "dana", Roles: []string{"dentist"}})
	require.NoError(t, err)
	refresh, _, err := jwtService.GenerateRefreshToken(jwt.Subject{UserID: 7})
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		valid      bool
		wantStatus int
	}{
		{"missing header", "", false, http.StatusUnauthorized},
		{"bad scheme", "Token " + access, false, http.StatusUnauthorized},
		{"refresh token", "Bearer " + refresh, false, http.StatusUnauthorized},
		{"revoked", "Bearer " + access, false, http.StatusUnauthorized},
		{"valid", "Bearer " + access, true, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockTokenStore)
			store.On("IsAccessTokenValid", mock.Anything, 7, accessID).Return(tt.valid, nil)
			auth := NewAuthMiddleware(jwtService, store, quietLogger())

			var caller *entity.Caller
			var tokenID string
			handler := auth.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				caller, _ = GetCallerFromContext(r.Context())
				tokenID, _ = GetTokenIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, caller)
				assert.Equal(t, 7, caller.ID)
				assert.True(t, caller.Roles.Has(entity.RoleDentist))
				assert.Equal(t, accessID, tokenID)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name       string
		caller     *entity.Caller
		wantStatus int
	}{
		{"no caller", nil, http.StatusUnauthorized},
		{"patient", &entity.Caller{ID: 20, Roles: entity.NewRoleSet(entity.RolePatient)}, http.StatusForbidden},
		{"dentist", &entity.Caller{ID: 7, Roles: entity.NewRoleSet(entity.RoleDentist)}, http.StatusOK},
		{"admin", &entity.Caller{ID: 1, Roles: entity.NewRoleSet(entity.RoleAdmin)}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/v1/dentist/schedules", nil)
			if tt.caller != nil {
				req = req.WithContext(context.WithValue(req.Context(), CallerKey, tt.caller))
			}
			rec := httptest.NewRecorder()
			RequireDentistOrAdmin(ok).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := NewCORSMiddleware("").Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/appointments", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
