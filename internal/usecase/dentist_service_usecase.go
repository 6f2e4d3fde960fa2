package usecase

import (
	"context"
	"fmt"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DentistServiceUsecase interface {
	ReconcileDentistServices(ctx context.Context, caller *entity.Caller, req *dto.ReconcileServicesRequest) (*dto.ReconcileServicesResponse, error)
	GetDentistServices(ctx context.Context, dentistID int) (*dto.DentistServiceListResponse, error)
	GetAllAssignments(ctx context.Context, caller *entity.Caller) (*dto.DentistServiceListResponse, error)
}

type dentistServiceUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	dentistServiceRepo repository.DentistServiceRepository
	activityLogger     service.ActivityLogger
}

func NewDentistServiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	dentistServiceRepo repository.DentistServiceRepository,
	activityLogger service.ActivityLogger,
) DentistServiceUsecase {
	return &dentistServiceUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		dentistServiceRepo: dentistServiceRepo,
		activityLogger:     activityLogger,
	}
}

// ReconcileDentistServices replaces the dentist's service set with the
// submitted one, touching only the rows that differ.
func (u *dentistServiceUsecase) ReconcileDentistServices(ctx context.Context, caller *entity.Caller, req *dto.ReconcileServicesRequest) (*dto.ReconcileServicesResponse, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}
	if req == nil || req.Payload == nil {
		return nil, requiredField("payload")
	}

	submitted := make([]int, 0, len(req.Payload))
	for _, item := range req.Payload {
		if item.ServiceID <= 0 {
			return nil, ValidationError("payload", "payload contains an invalid service_id")
		}
		submitted = append(submitted, item.ServiceID)
	}
	submitted = uniqueIDs(submitted)

	dentist, err := resolveDentist(ctx, u.db, u.log, u.userRepo, caller, req.DentistID)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, ErrInternal
	}
	defer tx.Rollback()

	current, err := u.dentistServiceRepo.FindServiceIDsByDentistID(ctx, tx, dentist.ID)
	if err != nil {
		u.log.Warnf("Failed to load services of dentist %d: %+v", dentist.ID, err)
		return nil, ErrInternal
	}
	current = uniqueIDs(current)

	toInsert := differenceIDs(submitted, current)
	toDelete := differenceIDs(current, submitted)

	for _, serviceID := range toInsert {
		assignment := &entity.DentistService{DentistID: dentist.ID, ServiceID: serviceID}
		if err := u.dentistServiceRepo.Create(ctx, tx, assignment); err != nil {
			if isForeignKeyError(err, "service") {
				return nil, ErrServiceNotFound
			}
			u.log.Warnf("Failed to assign service %d to dentist %d: %+v", serviceID, dentist.ID, err)
			return nil, ErrInternal
		}
	}

	for _, serviceID := range toDelete {
		if _, err := u.dentistServiceRepo.DeleteByDentistAndService(ctx, tx, dentist.ID, serviceID); err != nil {
			u.log.Warnf("Failed to remove service %d from dentist %d: %+v", serviceID, dentist.ID, err)
			return nil, ErrInternal
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, ErrInternal
	}

	u.log.Infof("Services reconciled: dentist=%d, added=%v, removed=%v", dentist.ID, toInsert, toDelete)
	u.activityLogger.Log(ctx, caller, entity.ActionServicesUpdated,
		fmt.Sprintf("Updated services of dentist #%d", dentist.ID),
		entity.JSON{"dentist_id": dentist.ID, "added": toInsert, "removed": toDelete, "final_services": submitted})

	return &dto.ReconcileServicesResponse{
		Added:         toInsert,
		Removed:       toDelete,
		FinalServices: submitted,
	}, nil
}

func (u *dentistServiceUsecase) GetDentistServices(ctx context.Context, dentistID int) (*dto.DentistServiceListResponse, error) {
	dentist, err := u.userRepo.FindByID(ctx, u.db, dentistID)
	if err != nil {
		u.log.Warnf("Failed to find dentist %d: %+v", dentistID, err)
		return nil, ErrInternal
	}
	if dentist == nil || !dentist.HasRole(entity.RoleDentist) {
		return nil, ErrDentistNotFound
	}

	assignments, err := u.dentistServiceRepo.FindByDentistID(ctx, u.db, dentistID)
	if err != nil {
		u.log.Warnf("Failed to find services of dentist %d: %+v", dentistID, err)
		return nil, ErrInternal
	}

	return &dto.DentistServiceListResponse{
		Assignments: converter.DentistServicesToResponses(assignments),
		Total:       len(assignments),
	}, nil
}

func (u *dentistServiceUsecase) GetAllAssignments(ctx context.Context, caller *entity.Caller) (*dto.DentistServiceListResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	assignments, err := u.dentistServiceRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find dentist services: %+v", err)
		return nil, ErrInternal
	}

	return &dto.DentistServiceListResponse{
		Assignments: converter.DentistServicesToResponses(assignments),
		Total:       len(assignments),
	}, nil
}
