package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Relations are included only when they were preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:                appointment.ID,
		AppointmentDate:   appointment.AppointmentDate,
		PatientID:         appointment.PatientID,
		DentistID:         appointment.DentistID,
		ScheduleID:        appointment.ScheduleID,
		ServiceID:         appointment.ServiceID,
		AppointmentTypeID: appointment.AppointmentTypeID,
		Emergency:         appointment.Emergency,
		UserSetDate:       appointment.UserSetDate,
		Status:            appointment.Status,
		Message:           appointment.Message,
	}

	if appointment.Patient != nil {
		response.PatientName = appointment.Patient.FullName()
	}
	if appointment.Dentist != nil {
		response.DentistName = appointment.Dentist.FullName()
	}
	if appointment.Schedule != nil {
		response.DayOfWeek = appointment.Schedule.DayOfWeek
		response.TimeSlot = appointment.Schedule.TimeSlot
	}
	if appointment.Service != nil {
		response.ServiceName = appointment.Service.Name
	}
	if appointment.AppointmentType != nil {
		response.AppointmentTypeName = appointment.AppointmentType.Name
	}
	if appointment.Reminder != nil {
		response.Reminder = ReminderToResponse(appointment.Reminder)
	}
	if len(appointment.Logs) > 0 {
		response.History = AppointmentLogsToResponses(appointment.Logs)
	}

	return response
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

func AppointmentLogsToResponses(logs []entity.AppointmentLog) []dto.AppointmentLogResponse {
	responses := make([]dto.AppointmentLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = dto.AppointmentLogResponse{
			ID:        log.ID,
			ActorType: log.ActorType,
			Action:    log.Action,
			Message:   log.Message,
			Snapshot:  log.Snapshot,
			LoggedAt:  log.LoggedAt,
		}
	}
	return responses
}
