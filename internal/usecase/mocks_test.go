package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func dentistUser(id int, username string) *entity.User {
	return &entity.User{
		ID:        id,
		Username:  username,
		FirstName: "Dana",
		LastName:  "Cruz",
		Email:     username + "@clinic.test",
		Roles:     []entity.Role{{ID: 2, Name: "dentist"}},
	}
}

func callerWith(id int, roles ...entity.RoleTag) *entity.Caller {
	return &entity.Caller{ID: id, Username: "user", Roles: entity.NewRoleSet(roles...)}
}

// MockUserRepository

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	args := m.Called(ctx, db, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.User, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(ctx, db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, db *gorm.DB, login string) (*entity.User, error) {
	args := m.Called(ctx, db, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, db *gorm.DB, role entity.RoleTag) ([]entity.User, error) {
	args := m.Called(ctx, db, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, db *gorm.DB, user *entity.User) error {
	args := m.Called(ctx, db, user)
	return args.Error(0)
}

func (m *MockUserRepository) ReplaceRoles(ctx context.Context, db *gorm.DB, user *entity.User, roles []entity.Role) error {
	args := m.Called(ctx, db, user, roles)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockRoleRepository

type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) Create(ctx context.Context, db *gorm.DB, role *entity.Role) error {
	args := m.Called(ctx, db, role)
	return args.Error(0)
}

func (m *MockRoleRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Role, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Role, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Role, error) {
	args := m.Called(ctx, db, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByNames(ctx context.Context, db *gorm.DB, names []string) ([]entity.Role, error) {
	args := m.Called(ctx, db, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Role), args.Error(1)
}

func (m *MockRoleRepository) Update(ctx context.Context, db *gorm.DB, role *entity.Role) error {
	args := m.Called(ctx, db, role)
	return args.Error(0)
}

func (m *MockRoleRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockScheduleSlotRepository

type MockScheduleSlotRepository struct {
	mock.Mock
}

func (m *MockScheduleSlotRepository) Create(ctx context.Context, db *gorm.DB, slot *entity.ScheduleSlot) error {
	args := m.Called(ctx, db, slot)
	return args.Error(0)
}

func (m *MockScheduleSlotRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.ScheduleSlot, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ScheduleSlot), args.Error(1)
}

func (m *MockScheduleSlotRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.ScheduleSlot, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ScheduleSlot), args.Error(1)
}

func (m *MockScheduleSlotRepository) FindByDentistID(ctx context.Context, db *gorm.DB, dentistID int) ([]entity.ScheduleSlot, error) {
	args := m.Called(ctx, db, dentistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ScheduleSlot), args.Error(1)
}

func (m *MockScheduleSlotRepository) FindIDsByDentistID(ctx context.Context, db *gorm.DB, dentistID int) ([]int, error) {
	args := m.Called(ctx, db, dentistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockScheduleSlotRepository) FindBySlot(ctx context.Context, db *gorm.DB, dentistID int, dayOfWeek, timeSlot string) (*entity.ScheduleSlot, error) {
	args := m.Called(ctx, db, dentistID, dayOfWeek, timeSlot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ScheduleSlot), args.Error(1)
}

func (m *MockScheduleSlotRepository) UpdateSlot(ctx context.Context, db *gorm.DB, id int, dayOfWeek, timeSlot string) error {
	args := m.Called(ctx, db, id, dayOfWeek, timeSlot)
	return args.Error(0)
}

func (m *MockScheduleSlotRepository) Update(ctx context.Context, db *gorm.DB, slot *entity.ScheduleSlot) error {
	args := m.Called(ctx, db, slot)
	return args.Error(0)
}

func (m *MockScheduleSlotRepository) DeleteByIDs(ctx context.Context, db *gorm.DB, ids []int) (int64, error) {
	args := m.Called(ctx, db, ids)
	return args.Get(0).(int64), args.Error(1)
}

// MockServiceTypeRepository

type MockServiceTypeRepository struct {
	mock.Mock
}

func (m *MockServiceTypeRepository) Create(ctx context.Context, db *gorm.DB, serviceType *entity.ServiceType) error {
	args := m.Called(ctx, db, serviceType)
	return args.Error(0)
}

func (m *MockServiceTypeRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.ServiceType, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.ServiceType, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) Update(ctx context.Context, db *gorm.DB, serviceType *entity.ServiceType) error {
	args := m.Called(ctx, db, serviceType)
	return args.Error(0)
}

func (m *MockServiceTypeRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockServiceRepository

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, db *gorm.DB, service *entity.Service) error {
	args := m.Called(ctx, db, service)
	return args.Error(0)
}

func (m *MockServiceRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Service, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Service), args.Error(1)
}

func (m *MockServiceRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Service, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Service), args.Error(1)
}

func (m *MockServiceRepository) Update(ctx context.Context, db *gorm.DB, service *entity.Service) error {
	args := m.Called(ctx, db, service)
	return args.Error(0)
}

func (m *MockServiceRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockDentistServiceRepository

type MockDentistServiceRepository struct {
	mock.Mock
}

func (m *MockDentistServiceRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.DentistService, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DentistService), args.Error(1)
}

func (m *MockDentistServiceRepository) FindByDentistID(ctx context.Context, db *gorm.DB, dentistID int) ([]entity.DentistService, error) {
	args := m.Called(ctx, db, dentistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DentistService), args.Error(1)
}

func (m *MockDentistServiceRepository) FindServiceIDsByDentistID(ctx context.Context, db *gorm.DB, dentistID int) ([]int, error) {
	args := m.Called(ctx, db, dentistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockDentistServiceRepository) Create(ctx context.Context, db *gorm.DB, assignment *entity.DentistService) error {
	args := m.Called(ctx, db, assignment)
	return args.Error(0)
}

func (m *MockDentistServiceRepository) DeleteByDentistAndService(ctx context.Context, db *gorm.DB, dentistID, serviceID int) (int64, error) {
	args := m.Called(ctx, db, dentistID, serviceID)
	return args.Get(0).(int64), args.Error(1)
}

// MockAppointmentRepository

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(ctx, db, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindDetailByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int) ([]entity.Appointment, error) {
	args := m.Called(ctx, db, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDentistID(ctx context.Context, db *gorm.DB, dentistID int) ([]entity.Appointment, error) {
	args := m.Called(ctx, db, dentistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindReferencedScheduleIDs(ctx context.Context, db *gorm.DB, scheduleIDs []int) ([]int, error) {
	args := m.Called(ctx, db, scheduleIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(ctx, db, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id int, status string) error {
	args := m.Called(ctx, db, id, status)
	return args.Error(0)
}

func (m *MockAppointmentRepository) SoftDelete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockAppointmentTypeRepository

type MockAppointmentTypeRepository struct {
	mock.Mock
}

func (m *MockAppointmentTypeRepository) Create(ctx context.Context, db *gorm.DB, appointmentType *entity.AppointmentType) error {
	args := m.Called(ctx, db, appointmentType)
	return args.Error(0)
}

func (m *MockAppointmentTypeRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.AppointmentType, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AppointmentType), args.Error(1)
}

func (m *MockAppointmentTypeRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.AppointmentType, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AppointmentType), args.Error(1)
}

func (m *MockAppointmentTypeRepository) Update(ctx context.Context, db *gorm.DB, appointmentType *entity.AppointmentType) error {
	args := m.Called(ctx, db, appointmentType)
	return args.Error(0)
}

func (m *MockAppointmentTypeRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockAppointmentLogRepository

type MockAppointmentLogRepository struct {
	mock.Mock
}

func (m *MockAppointmentLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.AppointmentLog) error {
	args := m.Called(ctx, db, log)
	return args.Error(0)
}

func (m *MockAppointmentLogRepository) FindByAppointmentID(ctx context.Context, db *gorm.DB, appointmentID int) ([]entity.AppointmentLog, error) {
	args := m.Called(ctx, db, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AppointmentLog), args.Error(1)
}

// MockReminderRepository

type MockReminderRepository struct {
	mock.Mock
}

func (m *MockReminderRepository) Create(ctx context.Context, db *gorm.DB, reminder *entity.Reminder) error {
	args := m.Called(ctx, db, reminder)
	return args.Error(0)
}

func (m *MockReminderRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Reminder, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Reminder), args.Error(1)
}

func (m *MockReminderRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Reminder, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Reminder), args.Error(1)
}

func (m *MockReminderRepository) FindByAppointmentID(ctx context.Context, db *gorm.DB, appointmentID int) (*entity.Reminder, error) {
	args := m.Called(ctx, db, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Reminder), args.Error(1)
}

func (m *MockReminderRepository) UpdateInformation(ctx context.Context, db *gorm.DB, appointmentID int, information entity.JSON) error {
	args := m.Called(ctx, db, appointmentID, information)
	return args.Error(0)
}

func (m *MockReminderRepository) MarkViewed(ctx context.Context, db *gorm.DB, appointmentID int) (int64, error) {
	args := m.Called(ctx, db, appointmentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReminderRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockActivityLogRepository

type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.ActivityLog) error {
	args := m.Called(ctx, db, log)
	return args.Error(0)
}

func (m *MockActivityLogRepository) FindAll(ctx context.Context, db *gorm.DB, filter repository.ActivityLogFilter) ([]entity.ActivityLog, int64, error) {
	args := m.Called(ctx, db, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.ActivityLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockActivityLogRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.ActivityLog, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ActivityLog), args.Error(1)
}

// MockActivityLogger

type MockActivityLogger struct {
	mock.Mock
}

func (m *MockActivityLogger) Log(ctx context.Context, actor *entity.Caller, action string, targetData string, metadata entity.JSON) {
	m.Called(ctx, actor, action, targetData, metadata)
}

// MockTokenStore

type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreAccessToken(ctx context.Context, userID int, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, userID, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, userID int, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, userID, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenValid(ctx context.Context, userID int, tokenID string) (bool, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenStore) ConsumeRefreshToken(ctx context.Context, userID int, tokenID string) (bool, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenStore) RevokeAccessToken(ctx context.Context, userID int, tokenID string) error {
	args := m.Called(ctx, userID, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) RevokeAllUserTokens(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
