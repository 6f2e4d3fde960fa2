package repository

import (
	"context"

	"clinic-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type ServiceTypeRepository interface {
	Create(ctx context.Context, db *gorm.DB, serviceType *entity.ServiceType) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.ServiceType, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.ServiceType, error)
	Update(ctx context.Context, db *gorm.DB, serviceType *entity.ServiceType) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, db *gorm.DB, service *entity.Service) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Service, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Service, error)
	Update(ctx context.Context, db *gorm.DB, service *entity.Service) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}

type DentistServiceRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.DentistService, error)
	FindByDentistID(ctx context.Context, db *gorm.DB, dentistID int) ([]entity.DentistService, error)
	FindServiceIDsByDentistID(ctx context.Context, db *gorm.DB, dentistID int) ([]int, error)
	Create(ctx context.Context, db *gorm.DB, assignment *entity.DentistService) error
	DeleteByDentistAndService(ctx context.Context, db *gorm.DB, dentistID, serviceID int) (int64, error)
}
