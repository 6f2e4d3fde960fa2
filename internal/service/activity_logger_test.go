package service

import (
	"context"
	"errors"
	"testing"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.ActivityLog) error {
	args := m.Called(ctx, db, log)
	return args.Error(0)
}

func (m *MockActivityLogRepository) FindAll(ctx context.Context, db *gorm.DB, filter repository.ActivityLogFilter) ([]entity.ActivityLog, int64, error) {
	args := m.Called(ctx, db, filter)
	return nil, 0, args.Error(2)
}

func (m *MockActivityLogRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.ActivityLog, error) {
	args := m.Called(ctx, db, id)
	return nil, args.Error(1)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestActivityLogger_RecordsCaller(t *testing.T) {
	repo := new(MockActivityLogRepository)
	logger := NewActivityLogger(nil, quietLogger(), repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything, mock.MatchedBy(func(a *entity.ActivityLog) bool {
		return a.UserID != nil && *a.UserID == 7 &&
			a.Username == "dana" &&
			a.Role == "dentist" &&
			a.Action == entity.ActionScheduleUpdated &&
			a.Metadata["dentist_id"] == 7
	})).Return(nil)

	caller := &entity.Caller{ID: 7, Username: "dana", Roles: entity.NewRoleSet(entity.RoleDentist, entity.RolePatient)}
	logger.Log(ctx, caller, entity.ActionScheduleUpdated, "Updated schedule of dentist #7", entity.JSON{"dentist_id": 7})

	repo.AssertExpectations(t)
}

func TestActivityLogger_AnonymousActor(t *testing.T) {
	repo := new(MockActivityLogRepository)
	logger := NewActivityLogger(nil, quietLogger(), repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything, mock.MatchedBy(func(a *entity.ActivityLog) bool {
		return a.UserID == nil && a.Username == "anonymous" && a.Role == "none"
	})).Return(nil)

	logger.Log(ctx, nil, entity.ActionUserLogin, "Failed login", nil)
	repo.AssertExpectations(t)
}

func TestActivityLogger_SwallowsErrors(t *testing.T) {
	repo := new(MockActivityLogRepository)
	logger := NewActivityLogger(nil, quietLogger(), repo)

	repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db down"))

	assert.NotPanics(t, func() {
		logger.Log(context.Background(), nil, entity.ActionRecordDeleted, "Deleted appointment #1", nil)
	})
}
