package dto

import "time"

// Request DTOs

type BookAppointmentRequest struct {
	DentistID     int    `json:"dentist_id"`
	DayOfWeek     string `json:"day"`
	TimeSlot      string `json:"time"`
	ServiceID     *int   `json:"service_id" validate:"omitempty,gt=0"`
	Emergency     bool   `json:"emergency"`
	FamilyBooking bool   `json:"family_booking"`
	UserSetDate   string `json:"date" validate:"max=50"`
	Message       string `json:"message" validate:"max=200"`
}

// UpdateAppointmentRequest carries the patient-editable fields. AppointmentID
// comes from the URL.
type UpdateAppointmentRequest struct {
	AppointmentID int    `json:"-"`
	ScheduleID    int    `json:"schedule_id"`
	UserSetDate   string `json:"date" validate:"max=50"`
	Emergency     bool   `json:"emergency"`
	FamilyBooking bool   `json:"family_booking"`
	Message       string `json:"message" validate:"max=200"`
}

type UpdateAppointmentStatusRequest struct {
	AppointmentID int    `json:"-"`
	Status        string `json:"status" validate:"max=50"`
}

// Response DTOs

type BookAppointmentResponse struct {
	AppointmentID int    `json:"appointment_id"`
	Status        string `json:"status"`
}

type AppointmentLogResponse struct {
	ID        int                    `json:"id"`
	ActorType string                 `json:"actor_type"`
	Action    string                 `json:"action"`
	Message   string                 `json:"message"`
	Snapshot  map[string]interface{} `json:"snapshot,omitempty"`
	LoggedAt  time.Time              `json:"logged_at"`
}

type AppointmentResponse struct {
	ID                  int                      `json:"id"`
	AppointmentDate     time.Time                `json:"appointment_date"`
	PatientID           int                      `json:"patient_id"`
	PatientName         string                   `json:"patient_name,omitempty"`
	DentistID           int                      `json:"dentist_id"`
	DentistName         string                   `json:"dentist_name,omitempty"`
	ScheduleID          int                      `json:"schedule_id"`
	DayOfWeek           string                   `json:"day_of_week,omitempty"`
	TimeSlot            string                   `json:"time_slot,omitempty"`
	ServiceID           *int                     `json:"service_id,omitempty"`
	ServiceName         string                   `json:"service_name,omitempty"`
	AppointmentTypeID   int                      `json:"appointment_type_id"`
	AppointmentTypeName string                   `json:"appointment_type_name,omitempty"`
	Emergency           bool                     `json:"emergency"`
	UserSetDate         string                   `json:"user_set_date"`
	Status              string                   `json:"status"`
	Message             string                   `json:"message"`
	Reminder            *ReminderResponse        `json:"reminder,omitempty"`
	History             []AppointmentLogResponse `json:"history,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
