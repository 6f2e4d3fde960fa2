package entity

import (
	"time"

	"gorm.io/gorm"
)

// Appointment statuses are free text; these are the values the clinic uses.
const (
	AppointmentStatusPending   = "Pending"
	AppointmentStatusAccepted  = "Accepted"
	AppointmentStatusDeclined  = "Declined"
	AppointmentStatusCompleted = "Completed"
)

// Appointment type ids are fixed: a family booking is type 2, anything else type 1.
const (
	AppointmentTypeIDNormal = 1
	AppointmentTypeIDFamily = 2
)

// AppointmentTypeIDFor maps the family-booking flag to an appointment type id.
func AppointmentTypeIDFor(familyBooking bool) int {
	if familyBooking {
		return AppointmentTypeIDFamily
	}
	return AppointmentTypeIDNormal
}

// AppointmentType is reference data ("Normal", "Family").
type AppointmentType struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(50);not null" json:"name"`
}

func (AppointmentType) TableName() string {
	return "appointment_types"
}

// Appointment binds a patient, a dentist and a schedule slot. DeletedOn makes it
// soft-deletable: default queries skip deleted rows, Unscoped ones include them.
type Appointment struct {
	ID                int            `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentDate   time.Time      `gorm:"autoCreateTime" json:"appointment_date"`
	PatientID         int            `gorm:"not null;index" json:"patient_id"`
	DentistID         int            `gorm:"not null;index" json:"dentist_id"`
	ScheduleID        int            `gorm:"not null;index" json:"schedule_id"`
	ServiceID         *int           `gorm:"index" json:"service_id,omitempty"`
	AppointmentTypeID int            `gorm:"not null;default:1" json:"appointment_type_id"`
	Emergency         bool           `gorm:"not null;default:false" json:"emergency"`
	UserSetDate       string         `gorm:"type:varchar(50)" json:"user_set_date"`
	Status            string         `gorm:"type:varchar(50);not null;default:'Pending'" json:"status"`
	Message           string         `gorm:"type:varchar(200)" json:"message"`
	DeletedOn         gorm.DeletedAt `gorm:"column:deleted_on;index" json:"deleted_on,omitempty"`

	// Relationships
	Patient         *User            `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Dentist         *User            `gorm:"foreignKey:DentistID" json:"dentist,omitempty"`
	Schedule        *ScheduleSlot    `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
	Service         *Service         `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	AppointmentType *AppointmentType `gorm:"foreignKey:AppointmentTypeID" json:"appointment_type,omitempty"`
	Reminder        *Reminder        `gorm:"foreignKey:AppointmentID" json:"reminder,omitempty"`
	Logs            []AppointmentLog `gorm:"foreignKey:AppointmentID" json:"logs,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Snapshot returns the persisted fields as an opaque map for history rows.
func (a *Appointment) Snapshot() JSON {
	snapshot := JSON{
		"id":                  a.ID,
		"patient_id":          a.PatientID,
		"dentist_id":          a.DentistID,
		"schedule_id":         a.ScheduleID,
		"service_id":          nil,
		"appointment_type_id": a.AppointmentTypeID,
		"emergency":           a.Emergency,
		"user_set_date":       a.UserSetDate,
		"status":              a.Status,
		"message":             a.Message,
	}
	if a.ServiceID != nil {
		snapshot["service_id"] = *a.ServiceID
	}
	if !a.AppointmentDate.IsZero() {
		snapshot["appointment_date"] = a.AppointmentDate.Format(time.RFC3339)
	}
	return snapshot
}

// History trail actor types and actions. Creates are recorded as "PATIENT",
// patient edits as "patient".
const (
	AppointmentActorPatient       = "PATIENT"
	AppointmentActorPatientUpdate = "patient"
	AppointmentLogActionCreate    = "create"
	AppointmentLogActionUpdate    = "update"
)

// AppointmentLog is one immutable row of an appointment's own history trail.
// It is written in the same transaction as the appointment change it records.
type AppointmentLog struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID int       `gorm:"not null;index" json:"appointment_id"`
	ActorType     string    `gorm:"type:varchar(20);not null" json:"actor_type"`
	Action        string    `gorm:"type:varchar(100)" json:"action"`
	Message       string    `gorm:"type:text" json:"message"`
	Snapshot      JSON      `gorm:"type:jsonb" json:"snapshot,omitempty"`
	LoggedAt      time.Time `gorm:"autoCreateTime" json:"logged_at"`
}

func (AppointmentLog) TableName() string {
	return "appointment_logs"
}
