package repository

import (
	"context"
	"errors"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type reminderRepository struct{}

func NewReminderRepository() domainRepo.ReminderRepository {
	return &reminderRepository{}
}

func (r *reminderRepository) Create(ctx context.Context, db *gorm.DB, reminder *entity.Reminder) error {
	return db.WithContext(ctx).Create(reminder).Error
}

func (r *reminderRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	if err := db.WithContext(ctx).Order("id DESC").Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := db.WithContext(ctx).Where("id = ?", id).First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) FindByAppointmentID(ctx context.Context, db *gorm.DB, appointmentID int) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := db.WithContext(ctx).Where("appointment_id = ?", appointmentID).First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) UpdateInformation(ctx context.Context, db *gorm.DB, appointmentID int, information entity.JSON) error {
	return db.WithContext(ctx).Model(&entity.Reminder{}).
		Where("appointment_id = ?", appointmentID).
		Update("information", information).Error
}

func (r *reminderRepository) MarkViewed(ctx context.Context, db *gorm.DB, appointmentID int) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Reminder{}).
		Where("appointment_id = ?", appointmentID).
		Update("viewed", true)
	return result.RowsAffected, result.Error
}

func (r *reminderRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Reminder{})
	return result.RowsAffected, result.Error
}
