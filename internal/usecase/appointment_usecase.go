package usecase

import (
	"context"
	"fmt"
	"strings"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const appointmentCreatedMessage = "Created a new appointment request."

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, caller *entity.Caller, req *dto.BookAppointmentRequest) (*dto.BookAppointmentResponse, error)
	UpdateAppointment(ctx context.Context, caller *entity.Caller, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointmentStatus(ctx context.Context, caller *entity.Caller, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, caller *entity.Caller, appointmentID int) error
	ListMyAppointments(ctx context.Context, caller *entity.Caller) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, caller *entity.Caller, appointmentID int) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	appointmentRepo    repository.AppointmentRepository
	appointmentLogRepo repository.AppointmentLogRepository
	scheduleRepo       repository.ScheduleSlotRepository
	activityLogger     service.ActivityLogger
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	appointmentLogRepo repository.AppointmentLogRepository,
	scheduleRepo repository.ScheduleSlotRepository,
	activityLogger service.ActivityLogger,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                 db,
		log:                log,
		appointmentRepo:    appointmentRepo,
		appointmentLogRepo: appointmentLogRepo,
		scheduleRepo:       scheduleRepo,
		activityLogger:     activityLogger,
	}
}

// BookAppointment binds the requested (dentist, day, time) to an existing slot
// and creates a pending appointment.
//
// Flow:
// 1. Validate dentist, day and time are present
// 2. Resolve the slot by exact match; never create one implicitly
// 3. Insert the appointment and its "create" history row in one transaction
// 4. Record the activity after commit
func (u *appointmentUsecase) BookAppointment(ctx context.Context, caller *entity.Caller, req *dto.BookAppointmentRequest) (*dto.BookAppointmentResponse, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}
	if req.DentistID <= 0 {
		return nil, requiredField("dentist_id")
	}
	if strings.TrimSpace(req.DayOfWeek) == "" {
		return nil, requiredField("day")
	}
	if strings.TrimSpace(req.TimeSlot) == "" {
		return nil, requiredField("time")
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, ErrInternal
	}
	defer tx.Rollback()

	slot, err := u.scheduleRepo.FindBySlot(ctx, tx, req.DentistID, req.DayOfWeek, req.TimeSlot)
	if err != nil {
		u.log.Warnf("Failed to find schedule for dentist %d: %+v", req.DentistID, err)
		return nil, ErrInternal
	}
	if slot == nil {
		return nil, ErrNoMatchingSchedule
	}

	appointment := &entity.Appointment{
		PatientID:         caller.ID,
		DentistID:         req.DentistID,
		ScheduleID:        slot.ID,
		ServiceID:         req.ServiceID,
		AppointmentTypeID: entity.AppointmentTypeIDFor(req.FamilyBooking),
		Emergency:         req.Emergency,
		UserSetDate:       req.UserSetDate,
		Status:            entity.AppointmentStatusPending,
		Message:           req.Message,
	}

	if err := u.appointmentRepo.Create(ctx, tx, appointment); err != nil {
		if isForeignKeyError(err, "service") {
			return nil, ErrServiceNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, ErrInternal
	}

	history := &entity.AppointmentLog{
		AppointmentID: appointment.ID,
		ActorType:     entity.AppointmentActorPatient,
		Action:        entity.AppointmentLogActionCreate,
		Message:       appointmentCreatedMessage,
		Snapshot:      appointment.Snapshot(),
	}
	if err := u.appointmentLogRepo.Create(ctx, tx, history); err != nil {
		u.log.Warnf("Failed to create appointment log for %d: %+v", appointment.ID, err)
		return nil, ErrInternal
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, ErrInternal
	}

	u.log.Infof("Appointment booked: id=%d, patient=%d, dentist=%d, schedule=%d", appointment.ID, caller.ID, req.DentistID, slot.ID)
	u.activityLogger.Log(ctx, caller, entity.ActionRecordCreated,
		fmt.Sprintf("Booked appointment #%d with dentist #%d on %s %s", appointment.ID, req.DentistID, slot.DayOfWeek, slot.TimeSlot),
		appointment.Snapshot())

	return &dto.BookAppointmentResponse{
		AppointmentID: appointment.ID,
		Status:        appointment.Status,
	}, nil
}

// UpdateAppointment applies patient edits and records before/after snapshots
// in the appointment's history.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, caller *entity.Caller, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}
	if req.AppointmentID <= 0 {
		return nil, requiredField("appointment_id")
	}
	if req.ScheduleID <= 0 {
		return nil, requiredField("schedule_id")
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, ErrInternal
	}
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(ctx, tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", req.AppointmentID, err)
		return nil, ErrInternal
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.PatientID != caller.ID && !caller.IsAdmin() {
		return nil, ErrForbidden
	}

	slot, err := u.scheduleRepo.FindByID(ctx, tx, req.ScheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule %d: %+v", req.ScheduleID, err)
		return nil, ErrInternal
	}
	if slot == nil {
		return nil, ErrScheduleNotFound
	}

	before := appointment.Snapshot()
	appointment.ScheduleID = slot.ID
	appointment.UserSetDate = req.UserSetDate
	appointment.Emergency = req.Emergency
	appointment.AppointmentTypeID = entity.AppointmentTypeIDFor(req.FamilyBooking)
	appointment.Message = req.Message
	after := appointment.Snapshot()

	if err := u.appointmentRepo.Update(ctx, tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", appointment.ID, err)
		return nil, ErrInternal
	}

	history := &entity.AppointmentLog{
		AppointmentID: appointment.ID,
		ActorType:     entity.AppointmentActorPatientUpdate,
		Action:        entity.AppointmentLogActionUpdate,
		Message:       fmt.Sprintf("Appointment #%d updated by %s", appointment.ID, caller.Username),
		Snapshot:      entity.JSON{"before": before, "after": after},
	}
	if err := u.appointmentLogRepo.Create(ctx, tx, history); err != nil {
		u.log.Warnf("Failed to create appointment log for %d: %+v", appointment.ID, err)
		return nil, ErrInternal
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, ErrInternal
	}

	u.activityLogger.Log(ctx, caller, entity.ActionRecordUpdated,
		fmt.Sprintf("Updated appointment #%d", appointment.ID),
		entity.JSON{"before": before, "after": after})

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointmentStatus changes only the status column.
func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, caller *entity.Caller, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}
	if req.AppointmentID <= 0 {
		return nil, requiredField("appointment_id")
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		return nil, requiredField("status")
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", req.AppointmentID, err)
		return nil, ErrInternal
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.DentistID != caller.ID && !caller.IsAdmin() {
		return nil, ErrForbidden
	}

	oldStatus := appointment.Status
	if err := u.appointmentRepo.UpdateStatus(ctx, u.db, appointment.ID, status); err != nil {
		u.log.Warnf("Failed to update status of appointment %d: %+v", appointment.ID, err)
		return nil, ErrInternal
	}
	appointment.Status = status

	u.activityLogger.Log(ctx, caller, entity.ActionRecordUpdated,
		fmt.Sprintf("Updated appointment #%d status from '%s' to '%s'", appointment.ID, oldStatus, status),
		entity.JSON{"appointment_id": appointment.ID, "old_status": oldStatus, "new_status": status})

	return converter.AppointmentToResponse(appointment), nil
}

// DeleteAppointment soft-deletes the appointment. Its slot stays referenced.
func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, caller *entity.Caller, appointmentID int) error {
	if caller == nil {
		return ErrUnauthenticated
	}
	if appointmentID <= 0 {
		return requiredField("appointment_id")
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return ErrInternal
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.PatientID != caller.ID && !caller.IsAdmin() {
		return ErrForbidden
	}

	affected, err := u.appointmentRepo.SoftDelete(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", appointmentID, err)
		return ErrInternal
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.activityLogger.Log(ctx, caller, entity.ActionRecordDeleted,
		fmt.Sprintf("Deleted appointment #%d", appointmentID),
		appointment.Snapshot())

	return nil
}

// ListMyAppointments returns what the caller may see: everything for admins,
// assigned appointments for dentists, own appointments otherwise.
func (u *appointmentUsecase) ListMyAppointments(ctx context.Context, caller *entity.Caller) (*dto.AppointmentListResponse, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	var (
		appointments []entity.Appointment
		err          error
	)
	switch {
	case caller.IsAdmin():
		appointments, err = u.appointmentRepo.FindAll(ctx, u.db)
	case entity.HasRole(caller, entity.RoleDentist):
		appointments, err = u.appointmentRepo.FindByDentistID(ctx, u.db, caller.ID)
	default:
		appointments, err = u.appointmentRepo.FindByPatientID(ctx, u.db, caller.ID)
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments for user %d: %+v", caller.ID, err)
		return nil, ErrInternal
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, caller *entity.Caller, appointmentID int) (*dto.AppointmentResponse, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	appointment, err := u.appointmentRepo.FindDetailByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, ErrInternal
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !canViewAppointment(caller, appointment) {
		return nil, ErrForbidden
	}

	return converter.AppointmentToResponse(appointment), nil
}

func canViewAppointment(caller *entity.Caller, appointment *entity.Appointment) bool {
	return caller.IsAdmin() || appointment.PatientID == caller.ID || appointment.DentistID == caller.ID
}
