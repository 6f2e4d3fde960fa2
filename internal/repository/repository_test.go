package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestFindReferencedScheduleIDs_IncludesSoftDeletedAppointments(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAppointmentRepository()

	// no deleted_on filter may appear between the IN list and the ORDER BY
	mock.ExpectQuery(`SELECT DISTINCT .*schedule_id.* FROM "appointments" WHERE schedule_id IN \(\$1,\$2\) ORDER BY schedule_id ASC`).
		WithArgs(10, 12).
		WillReturnRows(sqlmock.NewRows([]string{"schedule_id"}).AddRow(10))

	ids, err := repo.FindReferencedScheduleIDs(context.Background(), db, []int{10, 12})

	require.NoError(t, err)
	assert.Equal(t, []int{10}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindReferencedScheduleIDs_EmptyInputSkipsQuery(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAppointmentRepository()

	ids, err := repo.FindReferencedScheduleIDs(context.Background(), db, nil)

	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleSlotDeleteByIDs(t *testing.T) {
	t.Run("deletes listed ids", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewScheduleSlotRepository()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "schedule_slots" WHERE id IN \(\$1,\$2\)`).
			WithArgs(10, 12).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		affected, err := repo.DeleteByIDs(context.Background(), db, []int{10, 12})

		require.NoError(t, err)
		assert.Equal(t, int64(2), affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty list is a no-op", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewScheduleSlotRepository()

		affected, err := repo.DeleteByIDs(context.Background(), db, []int{})

		require.NoError(t, err)
		assert.Zero(t, affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReminderFindByAppointmentID_NotFoundIsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReminderRepository()

	mock.ExpectQuery(`SELECT \* FROM "reminders" WHERE appointment_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "appointment_id", "information", "viewed"}))

	reminder, err := repo.FindByAppointmentID(context.Background(), db, 42)

	require.NoError(t, err)
	assert.Nil(t, reminder)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleSlotFindIDsByDentistID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewScheduleSlotRepository()

	mock.ExpectQuery(`SELECT "id" FROM "schedule_slots" WHERE dentist_id = \$1 ORDER BY id ASC`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10).AddRow(11))

	ids, err := repo.FindIDsByDentistID(context.Background(), db, 7)

	require.NoError(t, err)
	assert.Equal(t, []int{10, 11}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
