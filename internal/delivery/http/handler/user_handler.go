package handler

import (
	"net/http"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"
	"clinic-booking/pkg/validator"
)

// UserHandler serves the public dentist directory and admin user management.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) GetDentists(w http.ResponseWriter, r *http.Request) {
	dentists, err := h.userUsecase.GetDentists(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Dentists retrieved successfully", dentists)
}

func (h *UserHandler) GetDentist(w http.ResponseWriter, r *http.Request) {
	dentistID, ok := pathID(w, r, "id", "dentist")
	if !ok {
		return
	}

	dentist, err := h.userUsecase.GetDentist(r.Context(), dentistID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Dentist retrieved successfully", dentist)
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	users, err := h.userUsecase.GetUsers(r.Context(), caller)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "id", "user")
	if !ok {
		return
	}

	user, err := h.userUsecase.GetUser(r.Context(), caller, userID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := h.userUsecase.CreateUser(r.Context(), caller, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "id", "user")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := h.userUsecase.UpdateUser(r.Context(), caller, userID, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "id", "user")
	if !ok {
		return
	}

	if err := h.userUsecase.DeleteUser(r.Context(), caller, userID); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User deleted successfully", nil)
}
