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

type ScheduleUsecase interface {
	ReconcileDentistSchedule(ctx context.Context, caller *entity.Caller, req *dto.ReconcileScheduleRequest) (*dto.ReconcileScheduleResponse, error)
	GetDentistSchedules(ctx context.Context, dentistID int) (*dto.ScheduleSlotListResponse, error)
	GetAllSchedules(ctx context.Context) (*dto.ScheduleSlotListResponse, error)
	GetSchedule(ctx context.Context, scheduleID int) (*dto.ScheduleSlotResponse, error)
	CreateSchedule(ctx context.Context, caller *entity.Caller, req *dto.CreateScheduleSlotRequest) (*dto.ScheduleSlotResponse, error)
	UpdateSchedule(ctx context.Context, caller *entity.Caller, scheduleID int, req *dto.UpdateScheduleSlotRequest) (*dto.ScheduleSlotResponse, error)
	DeleteSchedule(ctx context.Context, caller *entity.Caller, scheduleID int) error
}

type scheduleUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	scheduleRepo    repository.ScheduleSlotRepository
	appointmentRepo repository.AppointmentRepository
	activityLogger  service.ActivityLogger
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	scheduleRepo repository.ScheduleSlotRepository,
	appointmentRepo repository.AppointmentRepository,
	activityLogger service.ActivityLogger,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		activityLogger:  activityLogger,
	}
}

// ReconcileDentistSchedule makes the dentist's persisted slots match the
// submitted list.
//
// Flow:
// 1. Resolve the dentist (caller, or the requested dentist for admins)
// 2. Update owned slots in place, insert slots without an id, ignore foreign ids
// 3. Delete owned slots that were not submitted, unless an appointment references them
// 4. Commit, then record the activity
func (u *scheduleUsecase) ReconcileDentistSchedule(ctx context.Context, caller *entity.Caller, req *dto.ReconcileScheduleRequest) (*dto.ReconcileScheduleResponse, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}
	if req == nil || req.Schedules == nil {
		return nil, requiredField("schedules")
	}

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

	owned, err := u.scheduleRepo.FindIDsByDentistID(ctx, tx, dentist.ID)
	if err != nil {
		u.log.Warnf("Failed to load schedules of dentist %d: %+v", dentist.ID, err)
		return nil, ErrInternal
	}

	processed := make([]int, 0, len(req.Schedules))
	for _, input := range req.Schedules {
		day := input.DayOfWeek
		timeSlot := strings.TrimSpace(input.TimeSlot)
		if day == "" || timeSlot == "" {
			continue
		}

		switch {
		case input.ID == nil:
			slot := &entity.ScheduleSlot{
				DentistID: dentist.ID,
				DayOfWeek: day,
				TimeSlot:  timeSlot,
			}
			if err := u.scheduleRepo.Create(ctx, tx, slot); err != nil {
				u.log.Warnf("Failed to insert schedule for dentist %d: %+v", dentist.ID, err)
				return nil, ErrInternal
			}
			processed = append(processed, slot.ID)
		case containsID(owned, *input.ID):
			if err := u.scheduleRepo.UpdateSlot(ctx, tx, *input.ID, day, timeSlot); err != nil {
				u.log.Warnf("Failed to update schedule %d: %+v", *input.ID, err)
				return nil, ErrInternal
			}
			processed = append(processed, *input.ID)
		}
	}

	processed = uniqueIDs(processed)
	toDelete := differenceIDs(owned, processed)

	referenced, err := u.appointmentRepo.FindReferencedScheduleIDs(ctx, tx, toDelete)
	if err != nil {
		u.log.Warnf("Failed to check schedule references: %+v", err)
		return nil, ErrInternal
	}
	deletable := differenceIDs(toDelete, referenced)
	notDeleted := differenceIDs(toDelete, deletable)

	if _, err := u.scheduleRepo.DeleteByIDs(ctx, tx, deletable); err != nil {
		u.log.Warnf("Failed to delete schedules %v: %+v", deletable, err)
		return nil, ErrInternal
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, ErrInternal
	}

	u.log.Infof("Schedule reconciled: dentist=%d, processed=%v, deleted=%v, kept=%v", dentist.ID, processed, deletable, notDeleted)
	u.activityLogger.Log(ctx, caller, entity.ActionScheduleUpdated,
		fmt.Sprintf("Updated schedule of dentist #%d", dentist.ID),
		entity.JSON{
			"dentist_id":                      dentist.ID,
			"processed":                       processed,
			"deleted":                         deletable,
			"not_deleted_due_to_appointments": notDeleted,
		})

	return &dto.ReconcileScheduleResponse{
		Dentist:                     *converter.DentistToResponse(dentist),
		Processed:                   processed,
		Deleted:                     deletable,
		NotDeletedDueToAppointments: notDeleted,
	}, nil
}

func (u *scheduleUsecase) GetDentistSchedules(ctx context.Context, dentistID int) (*dto.ScheduleSlotListResponse, error) {
	dentist, err := u.userRepo.FindByID(ctx, u.db, dentistID)
	if err != nil {
		u.log.Warnf("Failed to find dentist %d: %+v", dentistID, err)
		return nil, ErrInternal
	}
	if dentist == nil || !dentist.HasRole(entity.RoleDentist) {
		return nil, ErrDentistNotFound
	}

	slots, err := u.scheduleRepo.FindByDentistID(ctx, u.db, dentistID)
	if err != nil {
		u.log.Warnf("Failed to find schedules of dentist %d: %+v", dentistID, err)
		return nil, ErrInternal
	}

	return &dto.ScheduleSlotListResponse{
		Schedules: converter.ScheduleSlotsToResponses(slots),
		Total:     len(slots),
	}, nil
}

func (u *scheduleUsecase) GetAllSchedules(ctx context.Context) (*dto.ScheduleSlotListResponse, error) {
	slots, err := u.scheduleRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all schedules: %+v", err)
		return nil, ErrInternal
	}

	return &dto.ScheduleSlotListResponse{
		Schedules: converter.ScheduleSlotsToResponses(slots),
		Total:     len(slots),
	}, nil
}

func (u *scheduleUsecase) GetSchedule(ctx context.Context, scheduleID int) (*dto.ScheduleSlotResponse, error) {
	slot, err := u.scheduleRepo.FindByID(ctx, u.db, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule %d: %+v", scheduleID, err)
		return nil, ErrInternal
	}
	if slot == nil {
		return nil, ErrScheduleNotFound
	}

	return converter.ScheduleSlotToResponse(slot), nil
}

func (u *scheduleUsecase) CreateSchedule(ctx context.Context, caller *entity.Caller, req *dto.CreateScheduleSlotRequest) (*dto.ScheduleSlotResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	timeSlot := strings.TrimSpace(req.TimeSlot)
	if req.DayOfWeek == "" {
		return nil, requiredField("day_of_week")
	}
	if timeSlot == "" {
		return nil, requiredField("time_slot")
	}

	dentist, err := resolveDentist(ctx, u.db, u.log, u.userRepo, caller, req.DentistID)
	if err != nil {
		return nil, err
	}

	slot := &entity.ScheduleSlot{
		DentistID: dentist.ID,
		DayOfWeek: req.DayOfWeek,
		TimeSlot:  timeSlot,
	}
	if err := u.scheduleRepo.Create(ctx, u.db, slot); err != nil {
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, ErrInternal
	}
	slot.Dentist = dentist

	u.activityLogger.Log(ctx, caller, entity.ActionScheduleCreated,
		fmt.Sprintf("Created schedule #%d for dentist #%d", slot.ID, dentist.ID),
		entity.JSON{"schedule_id": slot.ID, "day_of_week": slot.DayOfWeek, "time_slot": slot.TimeSlot})

	return converter.ScheduleSlotToResponse(slot), nil
}

func (u *scheduleUsecase) UpdateSchedule(ctx context.Context, caller *entity.Caller, scheduleID int, req *dto.UpdateScheduleSlotRequest) (*dto.ScheduleSlotResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	slot, err := u.scheduleRepo.FindByID(ctx, u.db, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule %d: %+v", scheduleID, err)
		return nil, ErrInternal
	}
	if slot == nil {
		return nil, ErrScheduleNotFound
	}
	before := entity.JSON{"dentist_id": slot.DentistID, "day_of_week": slot.DayOfWeek, "time_slot": slot.TimeSlot}

	if req.DentistID != 0 && req.DentistID != slot.DentistID {
		dentist, err := resolveDentist(ctx, u.db, u.log, u.userRepo, caller, req.DentistID)
		if err != nil {
			return nil, err
		}
		slot.DentistID = dentist.ID
		slot.Dentist = dentist
	}
	if req.DayOfWeek != "" {
		slot.DayOfWeek = req.DayOfWeek
	}
	if timeSlot := strings.TrimSpace(req.TimeSlot); timeSlot != "" {
		slot.TimeSlot = timeSlot
	}

	if err := u.scheduleRepo.Update(ctx, u.db, slot); err != nil {
		u.log.Warnf("Failed to update schedule %d: %+v", scheduleID, err)
		return nil, ErrInternal
	}

	u.activityLogger.Log(ctx, caller, entity.ActionScheduleUpdated,
		fmt.Sprintf("Updated schedule #%d", slot.ID),
		entity.JSON{
			"before": before,
			"after":  entity.JSON{"dentist_id": slot.DentistID, "day_of_week": slot.DayOfWeek, "time_slot": slot.TimeSlot},
		})

	return converter.ScheduleSlotToResponse(slot), nil
}

// DeleteSchedule removes a single slot. A slot that any appointment references,
// soft-deleted ones included, is never removed.
func (u *scheduleUsecase) DeleteSchedule(ctx context.Context, caller *entity.Caller, scheduleID int) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return ErrInternal
	}
	defer tx.Rollback()

	slot, err := u.scheduleRepo.FindByID(ctx, tx, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule %d: %+v", scheduleID, err)
		return ErrInternal
	}
	if slot == nil {
		return ErrScheduleNotFound
	}

	referenced, err := u.appointmentRepo.FindReferencedScheduleIDs(ctx, tx, []int{scheduleID})
	if err != nil {
		u.log.Warnf("Failed to check references of schedule %d: %+v", scheduleID, err)
		return ErrInternal
	}
	if len(referenced) > 0 {
		return ErrScheduleInUse
	}

	if _, err := u.scheduleRepo.DeleteByIDs(ctx, tx, []int{scheduleID}); err != nil {
		u.log.Warnf("Failed to delete schedule %d: %+v", scheduleID, err)
		return ErrInternal
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return ErrInternal
	}

	u.activityLogger.Log(ctx, caller, entity.ActionScheduleDeleted,
		fmt.Sprintf("Deleted schedule #%d", scheduleID),
		entity.JSON{"dentist_id": slot.DentistID, "day_of_week": slot.DayOfWeek, "time_slot": slot.TimeSlot})

	return nil
}
