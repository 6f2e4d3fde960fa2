package usecase

import (
	"context"
	"strings"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"
	"clinic-booking/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, caller *entity.Caller, accessTokenID string, refreshToken string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, caller *entity.Caller) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, caller *entity.Caller, req *dto.ChangePasswordRequest) error
}

type authUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	userRepo       repository.UserRepository
	roleRepo       repository.RoleRepository
	jwtService     *jwt.JWTService
	tokenStore     service.TokenStore
	activityLogger service.ActivityLogger
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	jwtService *jwt.JWTService,
	tokenStore service.TokenStore,
	activityLogger service.ActivityLogger,
) AuthUsecase {
	return &authUsecase{
		db:             db,
		log:            log,
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		jwtService:     jwtService,
		tokenStore:     tokenStore,
		activityLogger: activityLogger,
	}
}

// Register creates a patient account.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, ErrInternal
	}
	defer tx.Rollback()

	role, err := u.roleRepo.FindByName(ctx, tx, string(entity.RolePatient))
	if err != nil {
		u.log.Warnf("Failed to find patient role: %+v", err)
		return nil, ErrInternal
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, ErrInternal
	}

	user := &entity.User{
		Username:  strings.TrimSpace(req.Username),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  string(hashedPassword),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Roles:     []entity.Role{*role},
	}

	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		switch {
		case isDuplicateKeyError(err, "username"):
			return nil, ErrUsernameAlreadyExists
		case isDuplicateKeyError(err, "email"):
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, ErrInternal
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, ErrInternal
	}

	u.activityLogger.Log(ctx, callerFromUser(user), entity.ActionUserRegister,
		"Registered a new patient account", entity.JSON{"id": user.ID, "username": user.Username})

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// Read-only, no transaction needed
	user, err := u.userRepo.FindByUsernameOrEmail(ctx, u.db, strings.TrimSpace(req.Login))
	if err != nil {
		u.log.Warnf("Failed to find user by login: %+v", err)
		return nil, ErrInternal
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Disabled {
		return nil, ErrAccountDisabled
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	u.activityLogger.Log(ctx, callerFromUser(user), entity.ActionUserLogin, "Logged in", nil)
	return tokens, nil
}

// Logout revokes the current access token and, when given, the refresh token.
func (u *authUsecase) Logout(ctx context.Context, caller *entity.Caller, accessTokenID string, refreshToken string) error {
	if caller == nil {
		return ErrUnauthenticated
	}

	if err := u.tokenStore.RevokeAccessToken(ctx, caller.ID, accessTokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return ErrInternal
	}

	if refreshToken != "" {
		claims, err := u.jwtService.ValidateToken(refreshToken)
		if err == nil && claims.TokenType == jwt.RefreshToken && claims.UserID == caller.ID {
			if _, err := u.tokenStore.ConsumeRefreshToken(ctx, caller.ID, claims.TokenID); err != nil {
				u.log.Warnf("Failed to revoke refresh token: %+v", err)
				return ErrInternal
			}
		}
	}

	u.activityLogger.Log(ctx, caller, entity.ActionUserLogout, "Logged out", nil)
	return nil
}

// RefreshToken rotates a refresh token. The user is reloaded so role changes
// and disabled accounts take effect.
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	consumed, err := u.tokenStore.ConsumeRefreshToken(ctx, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to consume refresh token: %+v", err)
		return nil, ErrInternal
	}
	if !consumed {
		return nil, ErrTokenRevoked
	}

	user, err := u.userRepo.FindByID(ctx, u.db, claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", claims.UserID, err)
		return nil, ErrInternal
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	if user.Disabled {
		return nil, ErrAccountDisabled
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, caller *entity.Caller) (*dto.UserResponse, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	user, err := u.userRepo.FindByID(ctx, u.db, caller.ID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, ErrInternal
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// ChangePassword replaces the caller's password and signs out every session.
func (u *authUsecase) ChangePassword(ctx context.Context, caller *entity.Caller, req *dto.ChangePasswordRequest) error {
	if caller == nil {
		return ErrUnauthenticated
	}

	user, err := u.userRepo.FindByID(ctx, u.db, caller.ID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return ErrInternal
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return ErrInternal
	}
	user.Password = string(hashedPassword)

	if err := u.userRepo.Update(ctx, u.db, user); err != nil {
		u.log.Warnf("Failed to update password of user %d: %+v", user.ID, err)
		return ErrInternal
	}

	if err := u.tokenStore.RevokeAllUserTokens(ctx, user.ID); err != nil {
		u.log.Warnf("Failed to revoke tokens of user %d (non-fatal): %+v", user.ID, err)
	}

	u.activityLogger.Log(ctx, caller, entity.ActionPasswordUpdated, "Changed password", nil)
	return nil
}

func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	subject := jwt.Subject{
		UserID:   user.ID,
		Username: user.Username,
		Roles:    user.RoleSet().Names(),
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(subject)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, ErrInternal
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(subject)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, ErrInternal
	}

	if err := u.tokenStore.StoreAccessToken(ctx, user.ID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, ErrInternal
	}
	if err := u.tokenStore.StoreRefreshToken(ctx, user.ID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, ErrInternal
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func callerFromUser(user *entity.User) *entity.Caller {
	return &entity.Caller{ID: user.ID, Username: user.Username, Roles: user.RoleSet()}
}
