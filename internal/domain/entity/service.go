package entity

// ServiceType groups services, e.g. "Preventive" or "Restorative".
type ServiceType struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(50);not null" json:"name"`
}

func (ServiceType) TableName() string {
	return "service_types"
}

// Service is a treatment offered by dentists.
type Service struct {
	ID            int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string `gorm:"type:varchar(50);not null" json:"name"`
	ServiceTypeID int    `gorm:"not null;index" json:"service_type_id"`

	// Relationships
	ServiceType *ServiceType `gorm:"foreignKey:ServiceTypeID" json:"service_type,omitempty"`
}

func (Service) TableName() string {
	return "services"
}

// DentistService assigns a service to a dentist.
type DentistService struct {
	ID        int `gorm:"primaryKey;autoIncrement" json:"id"`
	DentistID int `gorm:"not null;index" json:"dentist_id"`
	ServiceID int `gorm:"not null;index" json:"service_id"`

	// Relationships
	Dentist *User    `gorm:"foreignKey:DentistID" json:"dentist,omitempty"`
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (DentistService) TableName() string {
	return "dentist_services"
}
