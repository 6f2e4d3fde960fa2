package repository

import (
	"context"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentLogRepository struct{}

func NewAppointmentLogRepository() domainRepo.AppointmentLogRepository {
	return &appointmentLogRepository{}
}

func (r *appointmentLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.AppointmentLog) error {
	return db.WithContext(ctx).Create(log).Error
}

func (r *appointmentLogRepository) FindByAppointmentID(ctx context.Context, db *gorm.DB, appointmentID int) ([]entity.AppointmentLog, error) {
	var logs []entity.AppointmentLog
	err := db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("logged_at ASC, id ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
