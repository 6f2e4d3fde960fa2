package usecase

import (
	"context"
	"fmt"
	"strings"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserUsecase interface {
	GetDentists(ctx context.Context) (*dto.DentistListResponse, error)
	GetDentist(ctx context.Context, dentistID int) (*dto.DentistResponse, error)
	GetUsers(ctx context.Context, caller *entity.Caller) (*dto.UserListResponse, error)
	GetUser(ctx context.Context, caller *entity.Caller, userID int) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, caller *entity.Caller, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, caller *entity.Caller, userID int, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, caller *entity.Caller, userID int) error
}

type userUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	userRepo       repository.UserRepository
	roleRepo       repository.RoleRepository
	tokenStore     service.TokenStore
	activityLogger service.ActivityLogger
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	tokenStore service.TokenStore,
	activityLogger service.ActivityLogger,
) UserUsecase {
	return &userUsecase{
		db:             db,
		log:            log,
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		tokenStore:     tokenStore,
		activityLogger: activityLogger,
	}
}

func (u *userUsecase) GetDentists(ctx context.Context) (*dto.DentistListResponse, error) {
	dentists, err := u.userRepo.FindByRole(ctx, u.db, entity.RoleDentist)
	if err != nil {
		u.log.Warnf("Failed to find dentists: %+v", err)
		return nil, ErrInternal
	}

	return &dto.DentistListResponse{
		Dentists: converter.DentistsToResponses(dentists),
		Total:    len(dentists),
	}, nil
}

func (u *userUsecase) GetDentist(ctx context.Context, dentistID int) (*dto.DentistResponse, error) {
	dentist, err := u.userRepo.FindByID(ctx, u.db, dentistID)
	if err != nil {
		u.log.Warnf("Failed to find dentist %d: %+v", dentistID, err)
		return nil, ErrInternal
	}
	if dentist == nil || dentist.Disabled || !dentist.HasRole(entity.RoleDentist) {
		return nil, ErrDentistNotFound
	}

	return converter.DentistToResponse(dentist), nil
}

func (u *userUsecase) GetUsers(ctx context.Context, caller *entity.Caller) (*dto.UserListResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	users, err := u.userRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find users: %+v", err)
		return nil, ErrInternal
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

func (u *userUsecase) GetUser(ctx context.Context, caller *entity.Caller, userID int) (*dto.UserResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", userID, err)
		return nil, ErrInternal
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) CreateUser(ctx context.Context, caller *entity.Caller, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, ErrInternal
	}
	defer tx.Rollback()

	roles, err := u.lookupRoles(ctx, tx, req.Roles)
	if err != nil {
		return nil, err
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
		Roles:     roles,
	}
	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		return nil, u.mapUserWriteError(err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, ErrInternal
	}

	u.activityLogger.Log(ctx, caller, entity.ActionUserCreated,
		fmt.Sprintf("Created user '%s'", user.Username),
		entity.JSON{"id": user.ID, "roles": user.RoleSet().Names()})

	return converter.UserToResponse(user), nil
}

// UpdateUser applies the non-empty fields. Changing the password or disabling
// the account revokes every issued token of the user.
func (u *userUsecase) UpdateUser(ctx context.Context, caller *entity.Caller, userID int, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, ErrInternal
	}
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", userID, err)
		return nil, ErrInternal
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	revokeTokens := false
	if req.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, ErrInternal
		}
		user.Password = string(hashedPassword)
		revokeTokens = true
	}
	if req.Disabled != nil {
		revokeTokens = revokeTokens || (*req.Disabled && !user.Disabled)
		user.Disabled = *req.Disabled
	}

	if err := u.userRepo.Update(ctx, tx, user); err != nil {
		return nil, u.mapUserWriteError(err)
	}

	if len(req.Roles) > 0 {
		roles, err := u.lookupRoles(ctx, tx, req.Roles)
		if err != nil {
			return nil, err
		}
		if err := u.userRepo.ReplaceRoles(ctx, tx, user, roles); err != nil {
			u.log.Warnf("Failed to replace roles of user %d: %+v", userID, err)
			return nil, ErrInternal
		}
		user.Roles = roles
		revokeTokens = true
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, ErrInternal
	}

	if revokeTokens {
		if err := u.tokenStore.RevokeAllUserTokens(ctx, user.ID); err != nil {
			u.log.Warnf("Failed to revoke tokens of user %d (non-fatal): %+v", user.ID, err)
		}
	}

	u.activityLogger.Log(ctx, caller, entity.ActionUserUpdated,
		fmt.Sprintf("Updated user '%s'", user.Username),
		entity.JSON{"id": user.ID, "roles": user.RoleSet().Names(), "disabled": user.Disabled})

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, caller *entity.Caller, userID int) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if caller.ID == userID {
		return ValidationError("id", "you cannot delete your own account")
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return ErrInternal
	}
	defer tx.Rollback()

	affected, err := u.userRepo.Delete(ctx, tx, userID)
	if err != nil {
		if isForeignKeyError(err, "") {
			return ErrRecordInUse
		}
		u.log.Warnf("Failed to delete user %d: %+v", userID, err)
		return ErrInternal
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return ErrInternal
	}

	if err := u.tokenStore.RevokeAllUserTokens(ctx, userID); err != nil {
		u.log.Warnf("Failed to revoke tokens of user %d (non-fatal): %+v", userID, err)
	}

	u.activityLogger.Log(ctx, caller, entity.ActionUserDeleted, fmt.Sprintf("Deleted user #%d", userID), nil)
	return nil
}

// lookupRoles resolves role names case-insensitively. Every name must exist.
func (u *userUsecase) lookupRoles(ctx context.Context, db *gorm.DB, names []string) ([]entity.Role, error) {
	normalized := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		tag := string(entity.NormalizeRole(name))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	if len(normalized) == 0 {
		return nil, requiredField("roles")
	}

	roles, err := u.roleRepo.FindByNames(ctx, db, normalized)
	if err != nil {
		u.log.Warnf("Failed to find roles %v: %+v", normalized, err)
		return nil, ErrInternal
	}
	if len(roles) != len(normalized) {
		return nil, ErrUnknownRole
	}

	return roles, nil
}

func (u *userUsecase) mapUserWriteError(err error) error {
	switch {
	case isDuplicateKeyError(err, "username"):
		return ErrUsernameAlreadyExists
	case isDuplicateKeyError(err, "email"):
		return ErrEmailAlreadyExists
	default:
		u.log.Warnf("Failed to save user: %+v", err)
		return ErrInternal
	}
}
