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

type ReminderUsecase interface {
	SaveReminder(ctx context.Context, caller *entity.Caller, req *dto.SaveReminderRequest) (*dto.SaveReminderResponse, error)
	GetReminder(ctx context.Context, caller *entity.Caller, appointmentID int) (*dto.ReminderResponse, error)
	MarkViewed(ctx context.Context, caller *entity.Caller, appointmentID int) error
	ListReminders(ctx context.Context, caller *entity.Caller) (*dto.ReminderListResponse, error)
	DeleteReminder(ctx context.Context, caller *entity.Caller, reminderID int) error
}

type reminderUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	reminderRepo    repository.ReminderRepository
	appointmentRepo repository.AppointmentRepository
	activityLogger  service.ActivityLogger
}

func NewReminderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reminderRepo repository.ReminderRepository,
	appointmentRepo repository.AppointmentRepository,
	activityLogger service.ActivityLogger,
) ReminderUsecase {
	return &reminderUsecase{
		db:              db,
		log:             log,
		reminderRepo:    reminderRepo,
		appointmentRepo: appointmentRepo,
		activityLogger:  activityLogger,
	}
}

// SaveReminder upserts the single reminder of an appointment: the first save
// inserts it unviewed, later saves overwrite its information.
func (u *reminderUsecase) SaveReminder(ctx context.Context, caller *entity.Caller, req *dto.SaveReminderRequest) (*dto.SaveReminderResponse, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}
	if req.AppointmentID <= 0 {
		return nil, requiredField("appointment_id")
	}
	if len(req.Payload) == 0 {
		return nil, requiredField("payload")
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
	if appointment.DentistID != caller.ID && !caller.IsAdmin() {
		return nil, ErrForbidden
	}

	information := entity.JSON(req.Payload)
	reminder, err := u.reminderRepo.FindByAppointmentID(ctx, tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find reminder of appointment %d: %+v", req.AppointmentID, err)
		return nil, ErrInternal
	}

	created := reminder == nil
	if created {
		reminder = &entity.Reminder{
			AppointmentID: req.AppointmentID,
			Information:   information,
			Viewed:        false,
		}
		if err := u.reminderRepo.Create(ctx, tx, reminder); err != nil {
			if isDuplicateKeyError(err, "appointment") {
				return nil, ErrReminderConflict
			}
			u.log.Warnf("Failed to create reminder for appointment %d: %+v", req.AppointmentID, err)
			return nil, ErrInternal
		}
	} else {
		if err := u.reminderRepo.UpdateInformation(ctx, tx, req.AppointmentID, information); err != nil {
			u.log.Warnf("Failed to update reminder of appointment %d: %+v", req.AppointmentID, err)
			return nil, ErrInternal
		}
		reminder.Information = information
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, ErrInternal
	}

	action := entity.ActionReminderUpdated
	verb := "Updated"
	if created {
		action = entity.ActionReminderCreated
		verb = "Created"
	}
	u.activityLogger.Log(ctx, caller, action,
		fmt.Sprintf("%s reminder for appointment #%d", verb, req.AppointmentID),
		entity.JSON{"appointment_id": req.AppointmentID, "information": information})

	return &dto.SaveReminderResponse{
		Reminder: *converter.ReminderToResponse(reminder),
		Created:  created,
	}, nil
}

// GetReminder returns nil without error when the appointment has no reminder.
func (u *reminderUsecase) GetReminder(ctx context.Context, caller *entity.Caller, appointmentID int) (*dto.ReminderResponse, error) {
	if _, err := u.visibleAppointment(ctx, caller, appointmentID); err != nil {
		return nil, err
	}

	reminder, err := u.reminderRepo.FindByAppointmentID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find reminder of appointment %d: %+v", appointmentID, err)
		return nil, ErrInternal
	}

	return converter.ReminderToResponse(reminder), nil
}

func (u *reminderUsecase) MarkViewed(ctx context.Context, caller *entity.Caller, appointmentID int) error {
	if _, err := u.visibleAppointment(ctx, caller, appointmentID); err != nil {
		return err
	}

	affected, err := u.reminderRepo.MarkViewed(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to mark reminder of appointment %d viewed: %+v", appointmentID, err)
		return ErrInternal
	}
	if affected == 0 {
		return ErrReminderNotFound
	}

	return nil
}

func (u *reminderUsecase) ListReminders(ctx context.Context, caller *entity.Caller) (*dto.ReminderListResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	reminders, err := u.reminderRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all reminders: %+v", err)
		return nil, ErrInternal
	}

	return &dto.ReminderListResponse{
		Reminders: converter.RemindersToResponses(reminders),
		Total:     len(reminders),
	}, nil
}

func (u *reminderUsecase) DeleteReminder(ctx context.Context, caller *entity.Caller, reminderID int) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	reminder, err := u.reminderRepo.FindByID(ctx, u.db, reminderID)
	if err != nil {
		u.log.Warnf("Failed to find reminder %d: %+v", reminderID, err)
		return ErrInternal
	}
	if reminder == nil {
		return ErrReminderNotFound
	}

	if _, err := u.reminderRepo.Delete(ctx, u.db, reminderID); err != nil {
		u.log.Warnf("Failed to delete reminder %d: %+v", reminderID, err)
		return ErrInternal
	}

	u.activityLogger.Log(ctx, caller, entity.ActionReminderDeleted,
		fmt.Sprintf("Deleted reminder #%d of appointment #%d", reminderID, reminder.AppointmentID),
		entity.JSON{"appointment_id": reminder.AppointmentID, "information": reminder.Information})

	return nil
}

func (u *reminderUsecase) visibleAppointment(ctx context.Context, caller *entity.Caller, appointmentID int) (*entity.Appointment, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
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

	return appointment, nil
}
