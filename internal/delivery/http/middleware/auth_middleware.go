package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/service"
	"clinic-booking/pkg/jwt"
	"clinic-booking/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	CallerKey  contextKey = "caller"
	TokenIDKey contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokenStore service.TokenStore
	log        *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokenStore service.TokenStore, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenStore: tokenStore,
		log:        log,
	}
}

// Authenticate resolves the bearer token into an entity.Caller. The token id
// must still be present in the token store.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		valid, err := m.tokenStore.IsAccessTokenValid(r.Context(), claims.UserID, claims.TokenID)
		if err != nil {
			m.log.Warnf("Failed to validate token of user %d: %+v", claims.UserID, err)
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !valid {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		caller := &entity.Caller{
			ID:       claims.UserID,
			Username: claims.Username,
			Roles:    entity.RoleSetFromNames(claims.Roles),
		}
		ctx := context.WithValue(r.Context(), CallerKey, caller)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCallerFromContext extracts the authenticated caller from context
func GetCallerFromContext(ctx context.Context) (*entity.Caller, bool) {
	caller, ok := ctx.Value(CallerKey).(*entity.Caller)
	return caller, ok && caller != nil
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
