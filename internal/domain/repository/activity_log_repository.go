package repository

import (
	"context"

	"clinic-booking/internal/domain/entity"

	"gorm.io/gorm"
)

// ActivityLogFilter narrows the admin activity log listing.
type ActivityLogFilter struct {
	Action string
	UserID *int
	Limit  int
	Offset int
}

type ActivityLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.ActivityLog) error
	FindAll(ctx context.Context, db *gorm.DB, filter ActivityLogFilter) ([]entity.ActivityLog, int64, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.ActivityLog, error)
}
