package usecase

import (
	"context"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	defaultActivityLogLimit = 20
	maxActivityLogLimit     = 100
)

type ActivityLogUsecase interface {
	GetActivityLogs(ctx context.Context, caller *entity.Caller, query *dto.ActivityLogQuery) (*dto.ActivityLogListResponse, error)
	GetActivityLog(ctx context.Context, caller *entity.Caller, id int64) (*dto.ActivityLogResponse, error)
}

type activityLogUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	activityLogRepo repository.ActivityLogRepository
}

func NewActivityLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	activityLogRepo repository.ActivityLogRepository,
) ActivityLogUsecase {
	return &activityLogUsecase{
		db:              db,
		log:             log,
		activityLogRepo: activityLogRepo,
	}
}

func (u *activityLogUsecase) GetActivityLogs(ctx context.Context, caller *entity.Caller, query *dto.ActivityLogQuery) (*dto.ActivityLogListResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	page, limit := query.Page, query.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultActivityLogLimit
	}
	if limit > maxActivityLogLimit {
		limit = maxActivityLogLimit
	}

	logs, total, err := u.activityLogRepo.FindAll(ctx, u.db, repository.ActivityLogFilter{
		Action: query.Action,
		UserID: query.UserID,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		u.log.Warnf("Failed to find activity logs: %+v", err)
		return nil, ErrInternal
	}

	return &dto.ActivityLogListResponse{
		Logs:  converter.ActivityLogsToResponses(logs),
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (u *activityLogUsecase) GetActivityLog(ctx context.Context, caller *entity.Caller, id int64) (*dto.ActivityLogResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	activityLog, err := u.activityLogRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find activity log %d: %+v", id, err)
		return nil, ErrInternal
	}
	if activityLog == nil {
		return nil, ErrActivityLogNotFound
	}

	return converter.ActivityLogToResponse(activityLog), nil
}
