package repository

import (
	"context"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type dentistServiceRepository struct{}

func NewDentistServiceRepository() domainRepo.DentistServiceRepository {
	return &dentistServiceRepository{}
}

func (r *dentistServiceRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.DentistService, error) {
	var assignments []entity.DentistService
	err := db.WithContext(ctx).
		Preload("Dentist").
		Preload("Service.ServiceType").
		Order("dentist_id ASC, service_id ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *dentistServiceRepository) FindByDentistID(ctx context.Context, db *gorm.DB, dentistID int) ([]entity.DentistService, error) {
	var assignments []entity.DentistService
	err := db.WithContext(ctx).
		Preload("Service.ServiceType").
		Where("dentist_id = ?", dentistID).
		Order("service_id ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *dentistServiceRepository) FindServiceIDsByDentistID(ctx context.Context, db *gorm.DB, dentistID int) ([]int, error) {
	var ids []int
	err := db.WithContext(ctx).Model(&entity.DentistService{}).
		Where("dentist_id = ?", dentistID).
		Order("id ASC").
		Pluck("service_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *dentistServiceRepository) Create(ctx context.Context, db *gorm.DB, assignment *entity.DentistService) error {
	return db.WithContext(ctx).Omit("Dentist", "Service").Create(assignment).Error
}

func (r *dentistServiceRepository) DeleteByDentistAndService(ctx context.Context, db *gorm.DB, dentistID, serviceID int) (int64, error) {
	result := db.WithContext(ctx).
		Where("dentist_id = ? AND service_id = ?", dentistID, serviceID).
		Delete(&entity.DentistService{})
	return result.RowsAffected, result.Error
}
