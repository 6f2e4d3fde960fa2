package handler

import (
	"net/http"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"
	"clinic-booking/pkg/validator"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

// ReconcileSchedules replaces the weekly schedule of the calling dentist.
// A body without "schedules" is rejected; an empty list clears the schedule.
func (h *ScheduleHandler) ReconcileSchedules(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req dto.ReconcileScheduleRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	result, err := h.scheduleUsecase.ReconcileDentistSchedule(r.Context(), caller, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedules updated successfully", result)
}

func (h *ScheduleHandler) GetDentistSchedules(w http.ResponseWriter, r *http.Request) {
	dentistID, ok := pathID(w, r, "id", "dentist")
	if !ok {
		return
	}

	schedules, err := h.scheduleUsecase.GetDentistSchedules(r.Context(), dentistID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", schedules)
}

func (h *ScheduleHandler) GetAllSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.scheduleUsecase.GetAllSchedules(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", schedules)
}

func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID, ok := pathID(w, r, "id", "schedule")
	if !ok {
		return
	}

	schedule, err := h.scheduleUsecase.GetSchedule(r.Context(), scheduleID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

func (h *ScheduleHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req dto.CreateScheduleSlotRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	schedule, err := h.scheduleUsecase.CreateSchedule(r.Context(), caller, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Schedule created successfully", schedule)
}

func (h *ScheduleHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	scheduleID, ok := pathID(w, r, "id", "schedule")
	if !ok {
		return
	}

	var req dto.UpdateScheduleSlotRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	schedule, err := h.scheduleUsecase.UpdateSchedule(r.Context(), caller, scheduleID, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedule updated successfully", schedule)
}

func (h *ScheduleHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	scheduleID, ok := pathID(w, r, "id", "schedule")
	if !ok {
		return
	}

	if err := h.scheduleUsecase.DeleteSchedule(r.Context(), caller, scheduleID); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedule deleted successfully", nil)
}
