package dto

// Request DTOs

// SaveReminderRequest upserts the reminder of one appointment.
type SaveReminderRequest struct {
	AppointmentID int                    `json:"-"`
	Payload       map[string]interface{} `json:"payload"`
}

// Response DTOs

type ReminderResponse struct {
	ID            int                    `json:"id"`
	AppointmentID int                    `json:"appointment_id"`
	Information   map[string]interface{} `json:"information"`
	Viewed        bool                   `json:"viewed"`
}

type SaveReminderResponse struct {
	Reminder ReminderResponse `json:"reminder"`
	Created  bool             `json:"created"`
}

type ReminderListResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
	Total     int                `json:"total"`
}
