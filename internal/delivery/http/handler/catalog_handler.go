package handler

import (
	"net/http"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"
	"clinic-booking/pkg/validator"
)

// CatalogHandler exposes roles, service types, services and appointment types.
type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
	validator      *validator.CustomValidator
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, validator *validator.CustomValidator) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		validator:      validator,
	}
}

// Roles

func (h *CatalogHandler) GetRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.catalogUsecase.GetRoles(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Roles retrieved successfully", roles)
}

func (h *CatalogHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req dto.RoleRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	role, err := h.catalogUsecase.CreateRole(r.Context(), caller, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Role created successfully", role)
}

func (h *CatalogHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "role")
	if !ok {
		return
	}

	var req dto.RoleRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	role, err := h.catalogUsecase.UpdateRole(r.Context(), caller, id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Role updated successfully", role)
}

func (h *CatalogHandler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "role")
	if !ok {
		return
	}

	if err := h.catalogUsecase.DeleteRole(r.Context(), caller, id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Role deleted successfully", nil)
}

// Service types

func (h *CatalogHandler) GetServiceTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.catalogUsecase.GetServiceTypes(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Service types retrieved successfully", types)
}

func (h *CatalogHandler) CreateServiceType(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req dto.ServiceTypeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	serviceType, err := h.catalogUsecase.CreateServiceType(r.Context(), caller, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Service type created successfully", serviceType)
}

func (h *CatalogHandler) UpdateServiceType(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "service type")
	if !ok {
		return
	}

	var req dto.ServiceTypeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	serviceType, err := h.catalogUsecase.UpdateServiceType(r.Context(), caller, id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Service type updated successfully", serviceType)
}

func (h *CatalogHandler) DeleteServiceType(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "service type")
	if !ok {
		return
	}

	if err := h.catalogUsecase.DeleteServiceType(r.Context(), caller, id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Service type deleted successfully", nil)
}

// Services

func (h *CatalogHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogUsecase.GetServices(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req dto.ServiceRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	service, err := h.catalogUsecase.CreateService(r.Context(), caller, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", service)
}

func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "service")
	if !ok {
		return
	}

	var req dto.ServiceRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	service, err := h.catalogUsecase.UpdateService(r.Context(), caller, id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Service updated successfully", service)
}

func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "service")
	if !ok {
		return
	}

	if err := h.catalogUsecase.DeleteService(r.Context(), caller, id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Service deleted successfully", nil)
}

// Appointment types

func (h *CatalogHandler) GetAppointmentTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.catalogUsecase.GetAppointmentTypes(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment types retrieved successfully", types)
}

func (h *CatalogHandler) CreateAppointmentType(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req dto.AppointmentTypeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointmentType, err := h.catalogUsecase.CreateAppointmentType(r.Context(), caller, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment type created successfully", appointmentType)
}

func (h *CatalogHandler) UpdateAppointmentType(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "appointment type")
	if !ok {
		return
	}

	var req dto.AppointmentTypeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointmentType, err := h.catalogUsecase.UpdateAppointmentType(r.Context(), caller, id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment type updated successfully", appointmentType)
}

func (h *CatalogHandler) DeleteAppointmentType(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "appointment type")
	if !ok {
		return
	}

	if err := h.catalogUsecase.DeleteAppointmentType(r.Context(), caller, id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment type deleted successfully", nil)
}
