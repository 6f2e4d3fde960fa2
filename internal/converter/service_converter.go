package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

func ServiceTypeToResponse(serviceType *entity.ServiceType) *dto.ServiceTypeResponse {
	if serviceType == nil {
		return nil
	}
	return &dto.ServiceTypeResponse{ID: serviceType.ID, Name: serviceType.Name}
}

func ServiceTypesToResponses(types []entity.ServiceType) []dto.ServiceTypeResponse {
	responses := make([]dto.ServiceTypeResponse, len(types))
	for i := range types {
		responses[i] = *ServiceTypeToResponse(&types[i])
	}
	return responses
}

// ServiceToResponse converts a Service entity, including its type name when preloaded
func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}

	response := &dto.ServiceResponse{
		ID:            service.ID,
		Name:          service.Name,
		ServiceTypeID: service.ServiceTypeID,
	}
	if service.ServiceType != nil {
		response.ServiceTypeName = service.ServiceType.Name
	}

	return response
}

func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i := range services {
		responses[i] = *ServiceToResponse(&services[i])
	}
	return responses
}

func DentistServiceToResponse(assignment *entity.DentistService) *dto.DentistServiceResponse {
	if assignment == nil {
		return nil
	}

	response := &dto.DentistServiceResponse{
		ID:        assignment.ID,
		DentistID: assignment.DentistID,
		Service:   dto.ServiceResponse{ID: assignment.ServiceID},
	}
	if assignment.Dentist != nil {
		response.DentistName = assignment.Dentist.FullName()
	}
	if assignment.Service != nil {
		response.Service = *ServiceToResponse(assignment.Service)
	}

	return response
}

func DentistServicesToResponses(assignments []entity.DentistService) []dto.DentistServiceResponse {
	responses := make([]dto.DentistServiceResponse, len(assignments))
	for i := range assignments {
		responses[i] = *DentistServiceToResponse(&assignments[i])
	}
	return responses
}
