package handler

import (
	"net/http"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"
	"clinic-booking/pkg/validator"
)

type DentistServiceHandler struct {
	dentistServiceUsecase usecase.DentistServiceUsecase
	validator             *validator.CustomValidator
}

func NewDentistServiceHandler(dentistServiceUsecase usecase.DentistServiceUsecase, validator *validator.CustomValidator) *DentistServiceHandler {
	return &DentistServiceHandler{
		dentistServiceUsecase: dentistServiceUsecase,
		validator:             validator,
	}
}

func (h *DentistServiceHandler) ReconcileServices(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req dto.ReconcileServicesRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	result, err := h.dentistServiceUsecase.ReconcileDentistServices(r.Context(), caller, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Services updated successfully", result)
}

func (h *DentistServiceHandler) GetDentistServices(w http.ResponseWriter, r *http.Request) {
	dentistID, ok := pathID(w, r, "id", "dentist")
	if !ok {
		return
	}

	services, err := h.dentistServiceUsecase.GetDentistServices(r.Context(), dentistID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

func (h *DentistServiceHandler) GetAllAssignments(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	assignments, err := h.dentistServiceUsecase.GetAllAssignments(r.Context(), caller)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Assignments retrieved successfully", assignments)
}
