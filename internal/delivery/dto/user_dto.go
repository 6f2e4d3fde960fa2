package dto

// Request DTOs

type CreateUserRequest struct {
	Username  string   `json:"username" validate:"required,min=3,max=100"`
	Email     string   `json:"email" validate:"required,email,max=180"`
	Password  string   `json:"password" validate:"required,min=6"`
	FirstName string   `json:"first_name" validate:"required,max=50"`
	LastName  string   `json:"last_name" validate:"required,max=50"`
	Roles     []string `json:"roles" validate:"required,min=1,dive,notblank"`
}

type UpdateUserRequest struct {
	Email     string   `json:"email" validate:"omitempty,email,max=180"`
	Password  string   `json:"password" validate:"omitempty,min=6"`
	FirstName string   `json:"first_name" validate:"omitempty,max=50"`
	LastName  string   `json:"last_name" validate:"omitempty,max=50"`
	Roles     []string `json:"roles" validate:"omitempty,min=1,dive,notblank"`
	Disabled  *bool    `json:"disabled"`
}

// Response DTOs

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// DentistResponse is the public view of a dentist account.
type DentistResponse struct {
	ID        int      `json:"id"`
	Username  string   `json:"username"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles,omitempty"`
}

type DentistListResponse struct {
	Dentists []DentistResponse `json:"dentists"`
	Total    int               `json:"total"`
}
