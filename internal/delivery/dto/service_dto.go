package dto

// Request DTOs

type ServiceTypeRequest struct {
	Name string `json:"name" validate:"required,notblank,max=50"`
}

type ServiceRequest struct {
	Name          string `json:"name" validate:"required,notblank,max=50"`
	ServiceTypeID int    `json:"service_type_id" validate:"required,gt=0"`
}

type ServiceAssignmentInput struct {
	ServiceID int `json:"service_id"`
}

// ReconcileServicesRequest replaces a dentist's service set. Payload must be
// present; duplicates are collapsed.
type ReconcileServicesRequest struct {
	DentistID int                      `json:"dentist_id" validate:"omitempty,gt=0"`
	Payload   []ServiceAssignmentInput `json:"payload"`
}

// Response DTOs

type ServiceTypeResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ServiceResponse struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	ServiceTypeID   int    `json:"service_type_id"`
	ServiceTypeName string `json:"service_type_name,omitempty"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

type DentistServiceResponse struct {
	ID          int             `json:"id"`
	DentistID   int             `json:"dentist_id"`
	DentistName string          `json:"dentist_name,omitempty"`
	Service     ServiceResponse `json:"service"`
}

type DentistServiceListResponse struct {
	Assignments []DentistServiceResponse `json:"assignments"`
	Total       int                      `json:"total"`
}

type ReconcileServicesResponse struct {
	Added         []int `json:"added"`
	Removed       []int `json:"removed"`
	FinalServices []int `json:"final_services"`
}
