package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

// ScheduleSlotToResponse converts a ScheduleSlot entity to ScheduleSlotResponse DTO
func ScheduleSlotToResponse(slot *entity.ScheduleSlot) *dto.ScheduleSlotResponse {
	if slot == nil {
		return nil
	}

	response := &dto.ScheduleSlotResponse{
		ID:        slot.ID,
		DentistID: slot.DentistID,
		DayOfWeek: slot.DayOfWeek,
		TimeSlot:  slot.TimeSlot,
	}
	if slot.Dentist != nil {
		response.DentistName = slot.Dentist.FullName()
	}

	return response
}

func ScheduleSlotsToResponses(slots []entity.ScheduleSlot) []dto.ScheduleSlotResponse {
	responses := make([]dto.ScheduleSlotResponse, len(slots))
	for i := range slots {
		responses[i] = *ScheduleSlotToResponse(&slots[i])
	}
	return responses
}
