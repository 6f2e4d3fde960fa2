package entity

// ScheduleSlot is one bookable (dentist, weekday, time label) unit of a dentist's
// published weekly availability. TimeSlot is a free label such as "09:00-10:00".
type ScheduleSlot struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	DentistID int    `gorm:"not null;index" json:"dentist_id"`
	DayOfWeek string `gorm:"type:varchar(20);not null" json:"day_of_week"`
	TimeSlot  string `gorm:"type:varchar(20);not null" json:"time_slot"`

	// Relationships
	Dentist *User `gorm:"foreignKey:DentistID" json:"dentist,omitempty"`
}

func (ScheduleSlot) TableName() string {
	return "schedule_slots"
}
