package repository

import (
	"context"
	"errors"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type serviceTypeRepository struct{}

func NewServiceTypeRepository() domainRepo.ServiceTypeRepository {
	return &serviceTypeRepository{}
}

func (r *serviceTypeRepository) Create(ctx context.Context, db *gorm.DB, serviceType *entity.ServiceType) error {
	return db.WithContext(ctx).Create(serviceType).Error
}

func (r *serviceTypeRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.ServiceType, error) {
	var types []entity.ServiceType
	if err := db.WithContext(ctx).Order("id ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *serviceTypeRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.ServiceType, error) {
	var serviceType entity.ServiceType
	err := db.WithContext(ctx).Where("id = ?", id).First(&serviceType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &serviceType, nil
}

func (r *serviceTypeRepository) Update(ctx context.Context, db *gorm.DB, serviceType *entity.ServiceType) error {
	return db.WithContext(ctx).Save(serviceType).Error
}

func (r *serviceTypeRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.ServiceType{})
	return result.RowsAffected, result.Error
}
