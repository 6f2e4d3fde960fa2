package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

func ReminderToResponse(reminder *entity.Reminder) *dto.ReminderResponse {
	if reminder == nil {
		return nil
	}

	return &dto.ReminderResponse{
		ID:            reminder.ID,
		AppointmentID: reminder.AppointmentID,
		Information:   reminder.Information,
		Viewed:        reminder.Viewed,
	}
}

func RemindersToResponses(reminders []entity.Reminder) []dto.ReminderResponse {
	responses := make([]dto.ReminderResponse, len(reminders))
	for i := range reminders {
		responses[i] = *ReminderToResponse(&reminders[i])
	}
	return responses
}
