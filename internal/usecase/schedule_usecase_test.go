package usecase

import (
	"context"
	"errors"
	"testing"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scheduleFixture struct {
	mock            sqlmock.Sqlmock
	userRepo        *MockUserRepository
	scheduleRepo    *MockScheduleSlotRepository
	appointmentRepo *MockAppointmentRepository
	activityLogger  *MockActivityLogger
	usecase         ScheduleUsecase
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	db, sqlMock := setupMockDB(t)
	f := &scheduleFixture{
		mock:            sqlMock,
		userRepo:        new(MockUserRepository),
		scheduleRepo:    new(MockScheduleSlotRepository),
		appointmentRepo: new(MockAppointmentRepository),
		activityLogger:  new(MockActivityLogger),
	}
	f.usecase = NewScheduleUsecase(db, testLogger(), f.userRepo, f.scheduleRepo, f.appointmentRepo, f.activityLogger)
	return f
}

func intPtr(v int) *int {
	return &v
}

func TestReconcileDentistSchedule_UpdatesInsertsAndKeepsReferenced(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()
	caller := callerWith(7, entity.RoleDentist)

	f.userRepo.On("FindByID", ctx, mock.Anything, 7).Return(dentistUser(7, "dana"), nil)
	f.mock.ExpectBegin()
	f.scheduleRepo.On("FindIDsByDentistID", ctx, mock.Anything, 7).Return([]int{10, 11}, nil)
	f.scheduleRepo.On("UpdateSlot", ctx, mock.Anything, 11, "Tuesday", "09:00-10:00").Return(nil)
	f.scheduleRepo.On("Create", ctx, mock.Anything, mock.MatchedBy(func(slot *entity.ScheduleSlot) bool {
		return slot.DentistID == 7 && slot.DayOfWeek == "Wednesday" && slot.TimeSlot == "10:00-11:00"
	})).Run(func(args mock.Arguments) {
		args.Get(2).(*entity.ScheduleSlot).ID = 12
	}).Return(nil)
	f.appointmentRepo.On("FindReferencedScheduleIDs", ctx, mock.Anything, []int{10}).Return([]int{10}, nil)
	f.scheduleRepo.On("DeleteByIDs", ctx, mock.Anything, []int{}).Return(int64(0), nil)
	f.mock.ExpectCommit()
	f.activityLogger.On("Log", ctx, caller, entity.ActionScheduleUpdated, mock.Anything, mock.Anything).Return()

	result, err := f.usecase.ReconcileDentistSchedule(ctx, caller, &dto.ReconcileScheduleRequest{
		Schedules: []dto.ScheduleSlotInput{
			{ID: intPtr(11), DayOfWeek: "Tuesday", TimeSlot: " 09:00-10:00 "},
			{DayOfWeek: "Wednesday", TimeSlot: "10:00-11:00"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 7, result.Dentist.ID)
	assert.Equal(t, []int{11, 12}, result.Processed)
	assert.Empty(t, result.Deleted)
	assert.Equal(t, []int{10}, result.NotDeletedDueToAppointments)
	assert.NoError(t, f.mock.ExpectationsWereMet())
	f.scheduleRepo.AssertExpectations(t)
	f.activityLogger.AssertExpectations(t)
}

func TestReconcileDentistSchedule_EmptyListDeletesUnreferenced(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()
	caller := callerWith(7, entity.RoleDentist)

	f.userRepo.On("FindByID", ctx, mock.Anything, 7).Return(dentistUser(7, "dana"), nil)
	f.mock.ExpectBegin()
	f.scheduleRepo.On("FindIDsByDentistID", ctx, mock.Anything, 7).Return([]int{10, 11, 12}, nil)
	f.appointmentRepo.On("FindReferencedScheduleIDs", ctx, mock.Anything, []int{10, 11, 12}).Return([]int{11}, nil)
	f.scheduleRepo.On("DeleteByIDs", ctx, mock.Anything, []int{10, 12}).Return(int64(2), nil)
	f.mock.ExpectCommit()
	f.activityLogger.On("Log", ctx, caller, entity.ActionScheduleUpdated, mock.Anything, mock.Anything).Return()

	result, err := f.usecase.ReconcileDentistSchedule(ctx, caller, &dto.ReconcileScheduleRequest{
		Schedules: []dto.ScheduleSlotInput{},
	})

	require.NoError(t, err)
	assert.Empty(t, result.Processed)
	assert.Equal(t, []int{10, 12}, result.Deleted)
	assert.Equal(t, []int{11}, result.NotDeletedDueToAppointments)
	f.scheduleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestReconcileDentistSchedule_IgnoresForeignIDsAndBlankEntries(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()
	caller := callerWith(7, entity.RoleDentist)

	f.userRepo.On("FindByID", ctx, mock.Anything, 7).Return(dentistUser(7, "dana"), nil)
	f.mock.ExpectBegin()
	f.scheduleRepo.On("FindIDsByDentistID", ctx, mock.Anything, 7).Return([]int{10}, nil)
	f.scheduleRepo.On("UpdateSlot", ctx, mock.Anything, 10, "Monday", "08:00-09:00").Return(nil)
	f.appointmentRepo.On("FindReferencedScheduleIDs", ctx, mock.Anything, []int{}).Return([]int{}, nil)
	f.scheduleRepo.On("DeleteByIDs", ctx, mock.Anything, []int{}).Return(int64(0), nil)
	f.mock.ExpectCommit()
	f.activityLogger.On("Log", ctx, caller, entity.ActionScheduleUpdated, mock.Anything, mock.Anything).Return()

	result, err := f.usecase.ReconcileDentistSchedule(ctx, caller, &dto.ReconcileScheduleRequest{
		Schedules: []dto.ScheduleSlotInput{
			{ID: intPtr(99), DayOfWeek: "Friday", TimeSlot: "14:00-15:00"},
			{ID: intPtr(10), DayOfWeek: "Monday", TimeSlot: "08:00-09:00"},
			{DayOfWeek: "", TimeSlot: "10:00-11:00"},
			{DayOfWeek: "Tuesday", TimeSlot: "   "},
			{ID: intPtr(10), DayOfWeek: "Monday", TimeSlot: "08:00-09:00"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []int{10}, result.Processed)
	assert.Empty(t, result.Deleted)
	f.scheduleRepo.AssertNotCalled(t, "UpdateSlot", mock.Anything, mock.Anything, 99, mock.Anything, mock.Anything)
	f.scheduleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcileDentistSchedule_AdminTargetsDentist(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()
	caller := callerWith(1, entity.RoleAdmin)

	f.userRepo.On("FindByID", ctx, mock.Anything, 7).Return(dentistUser(7, "dana"), nil)
	f.mock.ExpectBegin()
	f.scheduleRepo.On("FindIDsByDentistID", ctx, mock.Anything, 7).Return([]int{}, nil)
	f.appointmentRepo.On("FindReferencedScheduleIDs", ctx, mock.Anything, []int{}).Return([]int{}, nil)
	f.scheduleRepo.On("DeleteByIDs", ctx, mock.Anything, []int{}).Return(int64(0), nil)
	f.mock.ExpectCommit()
	f.activityLogger.On("Log", ctx, caller, entity.ActionScheduleUpdated, mock.Anything, mock.Anything).Return()

	result, err := f.usecase.ReconcileDentistSchedule(ctx, caller, &dto.ReconcileScheduleRequest{
		DentistID: 7,
		Schedules: []dto.ScheduleSlotInput{},
	})

	require.NoError(t, err)
	assert.Equal(t, 7, result.Dentist.ID)
	f.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, 1)
}

func TestReconcileDentistSchedule_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("missing schedules", func(t *testing.T) {
		f := newScheduleFixture(t)
		_, err := f.usecase.ReconcileDentistSchedule(ctx, callerWith(7, entity.RoleDentist), &dto.ReconcileScheduleRequest{})
		assert.Equal(t, ErrKindValidation, KindOf(err))
		assert.Equal(t, "schedules", err.(*AppError).FieldName())
	})

	t.Run("anonymous caller", func(t *testing.T) {
		f := newScheduleFixture(t)
		_, err := f.usecase.ReconcileDentistSchedule(ctx, nil, &dto.ReconcileScheduleRequest{Schedules: []dto.ScheduleSlotInput{}})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("caller is not a dentist", func(t *testing.T) {
		f := newScheduleFixture(t)
		patient := &entity.User{ID: 5, Username: "pat", Roles: []entity.Role{{ID: 1, Name: "patient"}}}
		f.userRepo.On("FindByID", ctx, mock.Anything, 5).Return(patient, nil)

		_, err := f.usecase.ReconcileDentistSchedule(ctx, callerWith(5, entity.RolePatient), &dto.ReconcileScheduleRequest{Schedules: []dto.ScheduleSlotInput{}})
		assert.ErrorIs(t, err, ErrNotDentist)
		assert.NoError(t, f.mock.ExpectationsWereMet())
	})

	t.Run("non admin cannot target another dentist", func(t *testing.T) {
		f := newScheduleFixture(t)
		f.userRepo.On("FindByID", ctx, mock.Anything, 7).Return(dentistUser(7, "dana"), nil)
		f.mock.ExpectBegin()
		f.scheduleRepo.On("FindIDsByDentistID", ctx, mock.Anything, 7).Return([]int{}, nil)
		f.appointmentRepo.On("FindReferencedScheduleIDs", ctx, mock.Anything, []int{}).Return([]int{}, nil)
		f.scheduleRepo.On("DeleteByIDs", ctx, mock.Anything, []int{}).Return(int64(0), nil)
		f.mock.ExpectCommit()
		f.activityLogger.On("Log", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

		result, err := f.usecase.ReconcileDentistSchedule(ctx, callerWith(7, entity.RoleDentist), &dto.ReconcileScheduleRequest{
			DentistID: 8,
			Schedules: []dto.ScheduleSlotInput{},
		})
		require.NoError(t, err)
		assert.Equal(t, 7, result.Dentist.ID)
		f.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, 8)
	})
}

func TestReconcileDentistSchedule_StorageFailureRollsBack(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()
	caller := callerWith(7, entity.RoleDentist)

	f.userRepo.On("FindByID", ctx, mock.Anything, 7).Return(dentistUser(7, "dana"), nil)
	f.mock.ExpectBegin()
	f.scheduleRepo.On("FindIDsByDentistID", ctx, mock.Anything, 7).Return([]int{10}, nil)
	f.scheduleRepo.On("Create", ctx, mock.Anything, mock.Anything).Return(errors.New("connection reset"))
	f.mock.ExpectRollback()

	_, err := f.usecase.ReconcileDentistSchedule(ctx, caller, &dto.ReconcileScheduleRequest{
		Schedules: []dto.ScheduleSlotInput{{DayOfWeek: "Monday", TimeSlot: "08:00-09:00"}},
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.NoError(t, f.mock.ExpectationsWereMet())
	f.scheduleRepo.AssertNotCalled(t, "DeleteByIDs", mock.Anything, mock.Anything, mock.Anything)
	f.activityLogger.AssertNotCalled(t, "Log", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Every owned slot ends up either processed, deleted or kept for its appointments.
func TestReconcileDentistSchedule_PartitionsOwnedSlots(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()
	caller := callerWith(7, entity.RoleDentist)
	owned := []int{1, 2, 3, 4, 5}

	f.userRepo.On("FindByID", ctx, mock.Anything, 7).Return(dentistUser(7, "dana"), nil)
	f.mock.ExpectBegin()
	f.scheduleRepo.On("FindIDsByDentistID", ctx, mock.Anything, 7).Return(owned, nil)
	f.scheduleRepo.On("UpdateSlot", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.appointmentRepo.On("FindReferencedScheduleIDs", ctx, mock.Anything, []int{1, 3, 5}).Return([]int{3}, nil)
	f.scheduleRepo.On("DeleteByIDs", ctx, mock.Anything, []int{1, 5}).Return(int64(2), nil)
	f.mock.ExpectCommit()
	f.activityLogger.On("Log", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	result, err := f.usecase.ReconcileDentistSchedule(ctx, caller, &dto.ReconcileScheduleRequest{
		Schedules: []dto.ScheduleSlotInput{
			{ID: intPtr(2), DayOfWeek: "Monday", TimeSlot: "08:00-09:00"},
			{ID: intPtr(4), DayOfWeek: "Thursday", TimeSlot: "13:00-14:00"},
		},
	})
	require.NoError(t, err)

	var union []int
	union = append(union, result.Processed...)
	union = append(union, result.Deleted...)
	union = append(union, result.NotDeletedDueToAppointments...)
	assert.ElementsMatch(t, owned, union)
	assert.Equal(t, []int{2, 4}, result.Processed)
}

func TestDeleteSchedule(t *testing.T) {
	ctx := context.Background()
	admin := callerWith(1, entity.RoleAdmin)
	slot := &entity.ScheduleSlot{ID: 10, DentistID: 7, DayOfWeek: "Monday", TimeSlot: "08:00-09:00"}

	t.Run("referenced slot is kept", func(t *testing.T) {
		f := newScheduleFixture(t)
		f.mock.ExpectBegin()
		f.scheduleRepo.On("FindByID", ctx, mock.Anything, 10).Return(slot, nil)
		f.appointmentRepo.On("FindReferencedScheduleIDs", ctx, mock.Anything, []int{10}).Return([]int{10}, nil)
		f.mock.ExpectRollback()

		err := f.usecase.DeleteSchedule(ctx, admin, 10)
		assert.ErrorIs(t, err, ErrScheduleInUse)
		f.scheduleRepo.AssertNotCalled(t, "DeleteByIDs", mock.Anything, mock.Anything, mock.Anything)
		assert.NoError(t, f.mock.ExpectationsWereMet())
	})

	t.Run("unreferenced slot is deleted", func(t *testing.T) {
		f := newScheduleFixture(t)
		f.mock.ExpectBegin()
		f.scheduleRepo.On("FindByID", ctx, mock.Anything, 10).Return(slot, nil)
		f.appointmentRepo.On("FindReferencedScheduleIDs", ctx, mock.Anything, []int{10}).Return([]int{}, nil)
		f.scheduleRepo.On("DeleteByIDs", ctx, mock.Anything, []int{10}).Return(int64(1), nil)
		f.mock.ExpectCommit()
		f.activityLogger.On("Log", ctx, admin, entity.ActionScheduleDeleted, "Deleted schedule #10", mock.Anything).Return()

		require.NoError(t, f.usecase.DeleteSchedule(ctx, admin, 10))
		assert.NoError(t, f.mock.ExpectationsWereMet())
		f.activityLogger.AssertExpectations(t)
	})

	t.Run("dentists cannot delete", func(t *testing.T) {
		f := newScheduleFixture(t)
		err := f.usecase.DeleteSchedule(ctx, callerWith(7, entity.RoleDentist), 10)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestGetDentistSchedules_UnknownDentist(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()
	f.userRepo.On("FindByID", ctx, mock.Anything, 3).Return(nil, nil)

	_, err := f.usecase.GetDentistSchedules(ctx, 3)
	assert.ErrorIs(t, err, ErrDentistNotFound)
}
