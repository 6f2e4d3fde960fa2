package repository

import (
	"context"
	"errors"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	return db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Preload("Roles").Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Preload("Roles").Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsernameOrEmail lets users sign in with either identifier.
func (r *userRepository) FindByUsernameOrEmail(ctx context.Context, db *gorm.DB, login string) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Preload("Roles").
		Where("username = ? OR email = ?", login, login).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error) {
	var users []entity.User
	err := db.WithContext(ctx).Preload("Roles").Order("id ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByRole(ctx context.Context, db *gorm.DB, role entity.RoleTag) ([]entity.User, error) {
	var users []entity.User
	err := db.WithContext(ctx).Preload("Roles").
		Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("LOWER(roles.name) = ?", string(role)).
		Where("users.disabled = ?", false).
		Order("users.last_name ASC, users.first_name ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, db *gorm.DB, user *entity.User) error {
	return db.WithContext(ctx).Omit("Roles").Save(user).Error
}

func (r *userRepository) ReplaceRoles(ctx context.Context, db *gorm.DB, user *entity.User, roles []entity.Role) error {
	return db.WithContext(ctx).Model(user).Association("Roles").Replace(roles)
}

func (r *userRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	tx := db.WithContext(ctx)
	if err := tx.Exec("DELETE FROM user_roles WHERE user_id = ?", id).Error; err != nil {
		return 0, err
	}
	result := tx.Where("id = ?", id).Delete(&entity.User{})
	return result.RowsAffected, result.Error
}
