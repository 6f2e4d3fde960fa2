package repository

import (
	"context"
	"errors"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type serviceRepository struct{}

func NewServiceRepository() domainRepo.ServiceRepository {
	return &serviceRepository{}
}

func (r *serviceRepository) Create(ctx context.Context, db *gorm.DB, service *entity.Service) error {
	return db.WithContext(ctx).Omit("ServiceType").Create(service).Error
}

func (r *serviceRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Service, error) {
	var services []entity.Service
	err := db.WithContext(ctx).Preload("ServiceType").Order("id ASC").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Service, error) {
	var service entity.Service
	err := db.WithContext(ctx).Preload("ServiceType").Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) Update(ctx context.Context, db *gorm.DB, service *entity.Service) error {
	return db.WithContext(ctx).Omit("ServiceType").Save(service).Error
}

func (r *serviceRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Service{})
	return result.RowsAffected, result.Error
}
