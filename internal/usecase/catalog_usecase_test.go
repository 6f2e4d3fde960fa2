package usecase

import (
	"context"
	"testing"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	roleRepo            *MockRoleRepository
	serviceTypeRepo     *MockServiceTypeRepository
	serviceRepo         *MockServiceRepository
	appointmentTypeRepo *MockAppointmentTypeRepository
	activityLogger      *MockActivityLogger
	usecase             CatalogUsecase
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	db, _ := setupMockDB(t)
	f := &catalogFixture{
		roleRepo:            new(MockRoleRepository),
		serviceTypeRepo:     new(MockServiceTypeRepository),
		serviceRepo:         new(MockServiceRepository),
		appointmentTypeRepo: new(MockAppointmentTypeRepository),
		activityLogger:      new(MockActivityLogger),
	}
	f.usecase = NewCatalogUsecase(db, testLogger(), f.roleRepo, f.serviceTypeRepo, f.serviceRepo, f.appointmentTypeRepo, f.activityLogger)
	return f
}

func TestCreateRole(t *testing.T) {
	ctx := context.Background()
	admin := callerWith(1, entity.RoleAdmin)

	t.Run("created", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.roleRepo.On("Create", ctx, mock.Anything, &entity.Role{Name: "hygienist"}).Run(func(args mock.Arguments) {
			args.Get(2).(*entity.Role).ID = 4
		}).Return(nil)
		f.activityLogger.On("Log", ctx, admin, entity.ActionRoleCreated, "Created role 'hygienist'", mock.Anything).Return()

		role, err := f.usecase.CreateRole(ctx, admin, &dto.RoleRequest{Name: " hygienist "})
		require.NoError(t, err)
		assert.Equal(t, 4, role.ID)
	})

	t.Run("duplicate name", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.roleRepo.On("Create", ctx, mock.Anything, mock.Anything).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_roles_name"})

		_, err := f.usecase.CreateRole(ctx, admin, &dto.RoleRequest{Name: "dentist"})
		assert.ErrorIs(t, err, ErrRoleAlreadyExists)
	})

	t.Run("dentist is forbidden", func(t *testing.T) {
		f := newCatalogFixture(t)
		_, err := f.usecase.CreateRole(ctx, callerWith(7, entity.RoleDentist), &dto.RoleRequest{Name: "x"})
		assert.ErrorIs(t, err, ErrForbidden)
		f.roleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteService_StillReferenced(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	f.serviceRepo.On("Delete", ctx, mock.Anything, 3).
		Return(int64(0), &pgconn.PgError{Code: "23503", ConstraintName: "fk_appointments_service"})

	err := f.usecase.DeleteService(ctx, callerWith(1, entity.RoleAdmin), 3)
	assert.ErrorIs(t, err, ErrRecordInUse)
}

func TestDeleteAppointmentType_BuiltInsAreProtected(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	admin := callerWith(1, entity.RoleAdmin)

	for _, id := range []int{entity.AppointmentTypeIDNormal, entity.AppointmentTypeIDFamily} {
		assert.ErrorIs(t, f.usecase.DeleteAppointmentType(ctx, admin, id), ErrRecordInUse)
	}
	f.appointmentTypeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)

	f.appointmentTypeRepo.On("Delete", ctx, mock.Anything, 3).Return(int64(1), nil)
	f.activityLogger.On("Log", ctx, admin, entity.ActionAppointmentTypeDelete, mock.Anything, mock.Anything).Return()
	require.NoError(t, f.usecase.DeleteAppointmentType(ctx, admin, 3))
}
