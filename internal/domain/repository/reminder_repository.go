package repository

import (
	"context"

	"clinic-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type ReminderRepository interface {
	Create(ctx context.Context, db *gorm.DB, reminder *entity.Reminder) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Reminder, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Reminder, error)
	FindByAppointmentID(ctx context.Context, db *gorm.DB, appointmentID int) (*entity.Reminder, error)
	UpdateInformation(ctx context.Context, db *gorm.DB, appointmentID int, information entity.JSON) error
	MarkViewed(ctx context.Context, db *gorm.DB, appointmentID int) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
