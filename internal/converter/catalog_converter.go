package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

func RolesToResponses(roles []entity.Role) []dto.RoleResponse {
	responses := make([]dto.RoleResponse, len(roles))
	for i, role := range roles {
		responses[i] = dto.RoleResponse{ID: role.ID, Name: role.Name}
	}
	return responses
}

func AppointmentTypesToResponses(types []entity.AppointmentType) []dto.AppointmentTypeResponse {
	responses := make([]dto.AppointmentTypeResponse, len(types))
	for i, appointmentType := range types {
		responses[i] = dto.AppointmentTypeResponse{ID: appointmentType.ID, Name: appointmentType.Name}
	}
	return responses
}
