package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ActivityLog is an append-only audit row. UserID is nil for anonymous actions.
type ActivityLog struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     *int      `gorm:"index" json:"user_id,omitempty"`
	Username   string    `gorm:"type:varchar(100);not null" json:"username"`
	Role       string    `gorm:"type:varchar(50);not null" json:"role"`
	Action     string    `gorm:"type:varchar(50);not null;index" json:"action"`
	TargetData string    `gorm:"type:text;not null" json:"target_data"`
	Metadata   JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Activity actions
const (
	ActionUserLogin             = "USER_LOGIN"
	ActionUserLogout            = "USER_LOGOUT"
	ActionUserRegister          = "USER_REGISTERED"
	ActionUserCreated           = "USER_CREATED"
	ActionUserUpdated           = "USER_UPDATED"
	ActionUserDeleted           = "USER_DELETED"
	ActionPasswordUpdated       = "PASSWORD_UPDATED"
	ActionRecordCreated         = "RECORD_CREATED"
	ActionRecordUpdated         = "RECORD_UPDATED"
	ActionRecordDeleted         = "RECORD_DELETED"
	ActionScheduleCreated       = "SCHEDULE_CREATED"
	ActionScheduleUpdated       = "SCHEDULE_UPDATED"
	ActionScheduleDeleted       = "SCHEDULE_DELETED"
	ActionServicesUpdated       = "SERVICES_UPDATED"
	ActionReminderCreated       = "REMINDER_CREATED"
	ActionReminderUpdated       = "REMINDER_UPDATED"
	ActionReminderDeleted       = "REMINDER_DELETED"
	ActionRoleCreated           = "ROLE_CREATED"
	ActionRoleUpdated           = "ROLE_UPDATED"
	ActionRoleDeleted           = "ROLE_DELETED"
	ActionServiceTypeCreated    = "SERVICE_TYPE_CREATED"
	ActionServiceTypeUpdated    = "SERVICE_TYPE_UPDATED"
	ActionServiceTypeDeleted    = "SERVICE_TYPE_DELETED"
	ActionServiceCreated        = "SERVICE_CREATED"
	ActionServiceUpdated        = "SERVICE_UPDATED"
	ActionServiceDeleted        = "SERVICE_DELETED"
	ActionAppointmentTypeCreate = "APPOINTMENT_TYPE_CREATED"
	ActionAppointmentTypeUpdate = "APPOINTMENT_TYPE_UPDATED"
	ActionAppointmentTypeDelete = "APPOINTMENT_TYPE_DELETED"
)
