package repository

import (
	"context"
	"errors"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).
		Omit("Patient", "Dentist", "Schedule", "Service", "AppointmentType", "Reminder", "Logs").
		Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindDetailByID loads the appointment with everything the detail view shows.
func (r *appointmentRepository) FindDetailByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).
		Preload("Patient").
		Preload("Dentist").
		Preload("Schedule").
		Preload("Service.ServiceType").
		Preload("AppointmentType").
		Preload("Reminder").
		Preload("Logs", func(db *gorm.DB) *gorm.DB {
			return db.Order("logged_at ASC, id ASC")
		}).
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := listQuery(db.WithContext(ctx)).
		Where("patient_id = ?", patientID).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDentistID(ctx context.Context, db *gorm.DB, dentistID int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := listQuery(db.WithContext(ctx)).
		Where("dentist_id = ?", dentistID).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	if err := listQuery(db.WithContext(ctx)).Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindReferencedScheduleIDs ignores the soft-delete filter: a
// soft-deleted appointment still pins its slot.
func (r *appointmentRepository) FindReferencedScheduleIDs(ctx context.Context, db *gorm.DB, scheduleIDs []int) ([]int, error) {
	var ids []int
	if len(scheduleIDs) == 0 {
		return ids, nil
	}
	err := db.WithContext(ctx).Unscoped().Model(&entity.Appointment{}).
		Distinct("schedule_id").
		Where("schedule_id IN ?", scheduleIDs).
		Order("schedule_id ASC").
		Pluck("schedule_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *appointmentRepository) Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).
		Omit("Patient", "Dentist", "Schedule", "Service", "AppointmentType", "Reminder", "Logs").
		Save(appointment).Error
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id int, status string) error {
	return db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// SoftDelete sets deleted_on. Returns 0 affected rows when the appointment is
// already gone.
func (r *appointmentRepository) SoftDelete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func listQuery(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Patient").
		Preload("Dentist").
		Preload("Schedule").
		Preload("Service").
		Preload("AppointmentType").
		Order("appointment_date DESC, id DESC")
}
