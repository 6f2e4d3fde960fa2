package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Roles:     user.RoleSet().Names(),
		Disabled:  user.Disabled,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}

// DentistToResponse converts a dentist account to its public view
func DentistToResponse(user *entity.User) *dto.DentistResponse {
	if user == nil {
		return nil
	}

	return &dto.DentistResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Roles:     user.RoleSet().Names(),
	}
}

func DentistsToResponses(users []entity.User) []dto.DentistResponse {
	responses := make([]dto.DentistResponse, len(users))
	for i := range users {
		responses[i] = *DentistToResponse(&users[i])
	}
	return responses
}
