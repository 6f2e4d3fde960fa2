package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, RoleDentist, NormalizeRole("ROLE_DENTIST"))
	assert.Equal(t, RoleAdmin, NormalizeRole("  Admin "))
	assert.Equal(t, RoleTag(""), NormalizeRole(""))
}

func TestRoleSet(t *testing.T) {
	set := RoleSetFromNames([]string{"patient", "ROLE_ADMIN", "hygienist", "auditor", ""})

	assert.True(t, set.Has(RoleAdmin))
	assert.True(t, set.HasAny(RoleDentist, RolePatient))
	assert.False(t, set.HasAny(RoleDentist))
	assert.Equal(t, []string{"admin", "patient", "auditor", "hygienist"}, set.Names())
	assert.Equal(t, "admin", set.Primary())
	assert.Equal(t, "none", NewRoleSet().Primary())
}

func TestCaller(t *testing.T) {
	var anonymous *Caller
	assert.False(t, anonymous.IsAdmin())
	assert.False(t, HasRole(anonymous, RolePatient))

	dentist := &Caller{ID: 7, Roles: NewRoleSet(RoleDentist)}
	assert.True(t, HasRole(dentist, RoleDentist))
	assert.False(t, dentist.IsAdmin())
}

func TestUser_FullNameAndRoles(t *testing.T) {
	user := &User{FirstName: "Dana", LastName: "Cruz", Roles: []Role{{Name: "dentist"}}}
	assert.Equal(t, "Dana Cruz", user.FullName())
	assert.True(t, user.HasRole(RoleDentist))

	user.FirstName = ""
	assert.Equal(t, "Cruz", user.FullName())
}

func TestAppointmentTypeIDFor(t *testing.T) {
	assert.Equal(t, 2, AppointmentTypeIDFor(true))
	assert.Equal(t, 1, AppointmentTypeIDFor(false))
}

func TestAppointment_Snapshot(t *testing.T) {
	serviceID := 4
	appointment := &Appointment{
		ID:                100,
		PatientID:         20,
		DentistID:         7,
		ScheduleID:        31,
		ServiceID:         &serviceID,
		AppointmentTypeID: 1,
		Status:            AppointmentStatusPending,
		AppointmentDate:   time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
	}

	snapshot := appointment.Snapshot()
	assert.Equal(t, 31, snapshot["schedule_id"])
	assert.Equal(t, 4, snapshot["service_id"])
	assert.Equal(t, "2024-06-03T09:00:00Z", snapshot["appointment_date"])

	appointment.ServiceID = nil
	assert.Nil(t, appointment.Snapshot()["service_id"])
}

func TestJSON_ValueAndScan(t *testing.T) {
	value, err := JSON{"note": "confirmed"}.Value()
	require.NoError(t, err)

	var scanned JSON
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, "confirmed", scanned["note"])

	empty, err := JSON{}.Value()
	require.NoError(t, err)
	assert.Nil(t, empty)

	assert.Error(t, scanned.Scan(42))
}
