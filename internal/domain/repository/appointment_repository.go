package repository

import (
	"context"

	"clinic-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error)
	FindDetailByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int) ([]entity.Appointment, error)
	FindByDentistID(ctx context.Context, db *gorm.DB, dentistID int) ([]entity.Appointment, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
	// FindReferencedScheduleIDs returns the subset of scheduleIDs used by any
	// appointment, soft-deleted ones included.
	FindReferencedScheduleIDs(ctx context.Context, db *gorm.DB, scheduleIDs []int) ([]int, error)
	Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	UpdateStatus(ctx context.Context, db *gorm.DB, id int, status string) error
	SoftDelete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}

type AppointmentTypeRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointmentType *entity.AppointmentType) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.AppointmentType, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.AppointmentType, error)
	Update(ctx context.Context, db *gorm.DB, appointmentType *entity.AppointmentType) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}

type AppointmentLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.AppointmentLog) error
	FindByAppointmentID(ctx context.Context, db *gorm.DB, appointmentID int) ([]entity.AppointmentLog, error)
}
