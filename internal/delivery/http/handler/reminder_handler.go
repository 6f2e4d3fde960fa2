package handler

import (
	"net/http"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"
	"clinic-booking/pkg/validator"
)

type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
	validator       *validator.CustomValidator
}

func NewReminderHandler(reminderUsecase usecase.ReminderUsecase, validator *validator.CustomValidator) *ReminderHandler {
	return &ReminderHandler{
		reminderUsecase: reminderUsecase,
		validator:       validator,
	}
}

// SaveReminder creates the appointment's reminder or overwrites its information.
func (h *ReminderHandler) SaveReminder(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	appointmentID, ok := pathID(w, r, "id", "appointment")
	if !ok {
		return
	}

	var req dto.SaveReminderRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}
	req.AppointmentID = appointmentID

	result, err := h.reminderUsecase.SaveReminder(r.Context(), caller, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	response.Success(w, status, "Reminder saved successfully", result)
}

func (h *ReminderHandler) GetReminder(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	appointmentID, ok := pathID(w, r, "id", "appointment")
	if !ok {
		return
	}

	reminder, err := h.reminderUsecase.GetReminder(r.Context(), caller, appointmentID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Reminder retrieved successfully", reminder)
}

func (h *ReminderHandler) MarkViewed(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	appointmentID, ok := pathID(w, r, "id", "appointment")
	if !ok {
		return
	}

	if err := h.reminderUsecase.MarkViewed(r.Context(), caller, appointmentID); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Reminder marked as viewed", nil)
}

func (h *ReminderHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	reminders, err := h.reminderUsecase.ListReminders(r.Context(), caller)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Reminders retrieved successfully", reminders)
}

func (h *ReminderHandler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	reminderID, ok := pathID(w, r, "id", "reminder")
	if !ok {
		return
	}

	if err := h.reminderUsecase.DeleteReminder(r.Context(), caller, reminderID); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Reminder deleted successfully", nil)
}
