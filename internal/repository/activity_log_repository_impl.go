package repository

import (
	"context"
	"errors"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type activityLogRepository struct{}

func NewActivityLogRepository() domainRepo.ActivityLogRepository {
	return &activityLogRepository{}
}

func (r *activityLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.ActivityLog) error {
	return db.WithContext(ctx).Create(log).Error
}

func (r *activityLogRepository) FindAll(ctx context.Context, db *gorm.DB, filter domainRepo.ActivityLogFilter) ([]entity.ActivityLog, int64, error) {
	var logs []entity.ActivityLog
	var total int64

	query := db.WithContext(ctx).Model(&entity.ActivityLog{})
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := query.Order("created_at DESC, id DESC").Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func (r *activityLogRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.ActivityLog, error) {
	var log entity.ActivityLog
	err := db.WithContext(ctx).Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
