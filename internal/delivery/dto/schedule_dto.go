package dto

// Request DTOs

// ScheduleSlotInput is one desired slot. A nil ID asks for a new slot.
type ScheduleSlotInput struct {
	ID        *int   `json:"id"`
	DayOfWeek string `json:"day_of_week"`
	TimeSlot  string `json:"time_slot"`
}

// ReconcileScheduleRequest replaces a dentist's weekly schedule. Schedules
// must be present; an empty list is allowed. DentistID is honoured for admins only.
type ReconcileScheduleRequest struct {
	DentistID int                 `json:"dentist_id" validate:"omitempty,gt=0"`
	Schedules []ScheduleSlotInput `json:"schedules"`
}

type CreateScheduleSlotRequest struct {
	DentistID int    `json:"dentist_id" validate:"required,gt=0"`
	DayOfWeek string `json:"day_of_week" validate:"required,notblank,max=20"`
	TimeSlot  string `json:"time_slot" validate:"required,notblank,max=20"`
}

type UpdateScheduleSlotRequest struct {
	DentistID int    `json:"dentist_id" validate:"omitempty,gt=0"`
	DayOfWeek string `json:"day_of_week" validate:"omitempty,max=20"`
	TimeSlot  string `json:"time_slot" validate:"omitempty,max=20"`
}

// Response DTOs

type ScheduleSlotResponse struct {
	ID          int    `json:"id"`
	DentistID   int    `json:"dentist_id"`
	DentistName string `json:"dentist_name,omitempty"`
	DayOfWeek   string `json:"day_of_week"`
	TimeSlot    string `json:"time_slot"`
}

type ScheduleSlotListResponse struct {
	Schedules []ScheduleSlotResponse `json:"schedules"`
	Total     int                    `json:"total"`
}

type ReconcileScheduleResponse struct {
	Dentist                     DentistResponse `json:"dentist"`
	Processed                   []int           `json:"processed"`
	Deleted                     []int           `json:"deleted"`
	NotDeletedDueToAppointments []int           `json:"not_deleted_due_to_appointments"`
}
