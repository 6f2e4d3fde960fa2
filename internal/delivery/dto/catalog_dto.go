package dto

type RoleRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

type RoleResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type AppointmentTypeRequest struct {
	Name string `json:"name" validate:"required,notblank,max=50"`
}

type AppointmentTypeResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
