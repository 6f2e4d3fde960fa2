package repository

import (
	"context"

	"clinic-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type ScheduleSlotRepository interface {
	Create(ctx context.Context, db *gorm.DB, slot *entity.ScheduleSlot) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.ScheduleSlot, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.ScheduleSlot, error)
	FindByDentistID(ctx context.Context, db *gorm.DB, dentistID int) ([]entity.ScheduleSlot, error)
	FindIDsByDentistID(ctx context.Context, db *gorm.DB, dentistID int) ([]int, error)
	FindBySlot(ctx context.Context, db *gorm.DB, dentistID int, dayOfWeek, timeSlot string) (*entity.ScheduleSlot, error)
	UpdateSlot(ctx context.Context, db *gorm.DB, id int, dayOfWeek, timeSlot string) error
	Update(ctx context.Context, db *gorm.DB, slot *entity.ScheduleSlot) error
	DeleteByIDs(ctx context.Context, db *gorm.DB, ids []int) (int64, error)
}
