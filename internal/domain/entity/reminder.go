package entity

// Reminder is the single free-form note attached to an appointment.
type Reminder struct {
	ID            int  `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID int  `gorm:"not null;uniqueIndex" json:"appointment_id"`
	Information   JSON `gorm:"type:jsonb;not null" json:"information"`
	Viewed        bool `gorm:"not null;default:false" json:"viewed"`
}

func (Reminder) TableName() string {
	return "reminders"
}
