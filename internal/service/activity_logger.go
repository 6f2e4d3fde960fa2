package service

import (
	"context"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const anonymousActor = "anonymous"

// ActivityLogger appends rows to the audit trail. It is called after the
// primary write has committed, so a failure here never undoes that write.
type ActivityLogger interface {
	Log(ctx context.Context, actor *entity.Caller, action string, targetData string, metadata entity.JSON)
}

type activityLogger struct {
	db              *gorm.DB
	log             *logrus.Logger
	activityLogRepo repository.ActivityLogRepository
}

func NewActivityLogger(db *gorm.DB, log *logrus.Logger, activityLogRepo repository.ActivityLogRepository) ActivityLogger {
	return &activityLogger{
		db:              db,
		log:             log,
		activityLogRepo: activityLogRepo,
	}
}

// Log records one action. Errors are logged and swallowed.
func (s *activityLogger) Log(ctx context.Context, actor *entity.Caller, action string, targetData string, metadata entity.JSON) {
	activity := &entity.ActivityLog{
		Username:   anonymousActor,
		Role:       entity.NewRoleSet().Primary(),
		Action:     action,
		TargetData: targetData,
		Metadata:   metadata,
	}
	if actor != nil {
		userID := actor.ID
		activity.UserID = &userID
		activity.Username = actor.Username
		activity.Role = actor.Roles.Primary()
	}

	if err := s.activityLogRepo.Create(ctx, s.db, activity); err != nil {
		s.log.WithFields(logrus.Fields{
			"action":   action,
			"username": activity.Username,
		}).Warnf("Failed to create activity log: %+v", err)
	}
}
