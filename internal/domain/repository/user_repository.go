package repository

import (
	"context"

	"clinic-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error)
	FindByUsernameOrEmail(ctx context.Context, db *gorm.DB, login string) (*entity.User, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error)
	FindByRole(ctx context.Context, db *gorm.DB, role entity.RoleTag) ([]entity.User, error)
	Update(ctx context.Context, db *gorm.DB, user *entity.User) error
	ReplaceRoles(ctx context.Context, db *gorm.DB, user *entity.User, roles []entity.Role) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
