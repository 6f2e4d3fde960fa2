package repository

import (
	"context"
	"errors"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type scheduleSlotRepository struct{}

func NewScheduleSlotRepository() domainRepo.ScheduleSlotRepository {
	return &scheduleSlotRepository{}
}

func (r *scheduleSlotRepository) Create(ctx context.Context, db *gorm.DB, slot *entity.ScheduleSlot) error {
	return db.WithContext(ctx).Omit("Dentist").Create(slot).Error
}

func (r *scheduleSlotRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.ScheduleSlot, error) {
	var slot entity.ScheduleSlot
	err := db.WithContext(ctx).Preload("Dentist").Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *scheduleSlotRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.ScheduleSlot, error) {
	var slots []entity.ScheduleSlot
	err := db.WithContext(ctx).Preload("Dentist").Order("dentist_id ASC, id ASC").Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *scheduleSlotRepository) FindByDentistID(ctx context.Context, db *gorm.DB, dentistID int) ([]entity.ScheduleSlot, error) {
	var slots []entity.ScheduleSlot
	err := db.WithContext(ctx).Where("dentist_id = ?", dentistID).
		Order("day_of_week ASC, time_slot ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *scheduleSlotRepository) FindIDsByDentistID(ctx context.Context, db *gorm.DB, dentistID int) ([]int, error) {
	var ids []int
	err := db.WithContext(ctx).Model(&entity.ScheduleSlot{}).
		Where("dentist_id = ?", dentistID).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// FindBySlot matches dentist, day and time exactly. When duplicates exist the
// lowest id wins.
func (r *scheduleSlotRepository) FindBySlot(ctx context.Context, db *gorm.DB, dentistID int, dayOfWeek, timeSlot string) (*entity.ScheduleSlot, error) {
	var slot entity.ScheduleSlot
	err := db.WithContext(ctx).
		Where("dentist_id = ? AND day_of_week = ? AND time_slot = ?", dentistID, dayOfWeek, timeSlot).
		Order("id ASC").
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *scheduleSlotRepository) UpdateSlot(ctx context.Context, db *gorm.DB, id int, dayOfWeek, timeSlot string) error {
	return db.WithContext(ctx).Model(&entity.ScheduleSlot{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"day_of_week": dayOfWeek,
			"time_slot":   timeSlot,
		}).Error
}

func (r *scheduleSlotRepository) Update(ctx context.Context, db *gorm.DB, slot *entity.ScheduleSlot) error {
	return db.WithContext(ctx).Omit("Dentist").Save(slot).Error
}

func (r *scheduleSlotRepository) DeleteByIDs(ctx context.Context, db *gorm.DB, ids []int) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := db.WithContext(ctx).Where("id IN ?", ids).Delete(&entity.ScheduleSlot{})
	return result.RowsAffected, result.Error
}
