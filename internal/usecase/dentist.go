package usecase

import (
	"context"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// resolveDentist picks the dentist a dentist-side operation acts on: the caller
// itself, or requestedID when an admin asks for it. The account must carry the
// dentist role.
func resolveDentist(
	ctx context.Context,
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	caller *entity.Caller,
	requestedID int,
) (*entity.User, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	dentistID := caller.ID
	if requestedID != 0 && caller.IsAdmin() {
		dentistID = requestedID
	}

	dentist, err := userRepo.FindByID(ctx, db, dentistID)
	if err != nil {
		log.Warnf("Failed to find dentist %d: %+v", dentistID, err)
		return nil, ErrInternal
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}
	if !dentist.HasRole(entity.RoleDentist) {
		return nil, ErrNotDentist
	}

	return dentist, nil
}

func requireAdmin(caller *entity.Caller) error {
	if caller == nil {
		return ErrUnauthenticated
	}
	if !caller.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
