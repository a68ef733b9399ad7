package gormstore

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"hrmslite.com/hrms/core"
	hrms "hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/hrms/model"
)

// openTestStore connects to HRMS_TEST_DSN (dialect HRMS_TEST_DIALECT, mysql by
// default) and empties both tables. The database is wiped, so never point it
// at real data.
func openTestStore(t *testing.T) *Store {
	dsn := os.Getenv("HRMS_TEST_DSN")
	if dsn == "" {
		t.Skip("HRMS_TEST_DSN not set")
	}
	dialect := core.Dialect(os.Getenv("HRMS_TEST_DIALECT"))
	if dialect == "" {
		dialect = core.DialectMySQL
	}

	dm, err := core.New(dialect, dsn, 2, core.ParseLogLevel("silent"))
	require.NoError(t, err)
	s := New(dm)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	ctx := context.Background()
	require.NoError(t, s.Migrate(ctx))
	all := s.db.Session(&gorm.Session{AllowGlobalUpdate: true})
	require.NoError(t, all.Delete(&model.Attendance{}).Error)
	require.NoError(t, all.Delete(&model.Employee{}).Error)
	return s
}

func TestStoreQueries(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"EMP001", "EMP002"} {
		emp := &model.Employee{
			ID: id + "-id", EmployeeID: id, FullName: id, Email: id + "@example.com", Department: "HR",
			CreatedAt: created.Add(time.Duration(i) * time.Hour), UpdatedAt: created,
		}
		require.NoError(t, s.CreateEmployee(ctx, emp))
	}

	employees, err := s.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "EMP002", employees[0].EmployeeID)

	err = s.CreateEmployee(ctx, &model.Employee{ID: "x", EmployeeID: "EMP001", FullName: "x", Email: "x@example.com", Department: "HR", CreatedAt: created, UpdatedAt: created})
	var dup *hrms.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "employeeId", dup.Field)

	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	for i, status := range []model.AttendanceStatus{model.StatusPresent, model.StatusAbsent, model.StatusPresent} {
		record := &model.Attendance{ID: string(rune('a' + i)), EmployeeID: "EMP001", Date: day.AddDate(0, 0, i), Status: status, CreatedAt: created}
		require.NoError(t, s.CreateAttendance(ctx, record))
	}

	found, err := s.FindAttendance(ctx, "EMP001", day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, model.StatusAbsent, found.Status)

	// the same instant in another zone is the same day
	found, err = s.FindAttendance(ctx, "EMP001", day.In(time.FixedZone("AEST", 10*3600)))
	require.NoError(t, err)
	assert.NotNil(t, found)

	found, err = s.FindAttendance(ctx, "EMP001", day.AddDate(0, 0, 5))
	require.NoError(t, err)
	assert.Nil(t, found)

	err = s.CreateAttendance(ctx, &model.Attendance{ID: "z", EmployeeID: "EMP001", Date: day, Status: model.StatusAbsent, CreatedAt: created})
	assert.ErrorIs(t, err, hrms.ErrDuplicateKey)

	records, err := s.ListAttendance(ctx, "EMP001")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.True(t, records[0].Date.Equal(day.AddDate(0, 0, 2)))
	assert.True(t, records[2].Date.Equal(day))

	n, err := s.CountAttendance(ctx, "EMP001", model.StatusPresent)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestStoreCascadeTransaction(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.CreateEmployee(ctx, &model.Employee{ID: "e1", EmployeeID: "EMP001", FullName: "A", Email: "a@example.com", Department: "HR", CreatedAt: now, UpdatedAt: now}))
	for i := 0; i < 2; i++ {
		require.NoError(t, s.CreateAttendance(ctx, &model.Attendance{ID: string(rune('a' + i)), EmployeeID: "EMP001", Date: now.AddDate(0, 0, i), Status: model.StatusPresent, CreatedAt: now}))
	}

	// a failing callback rolls back the attendance delete
	err := s.Transaction(ctx, func(ctx context.Context, tx hrms.Store) error {
		n, err := tx.DeleteAttendanceByEmployee(ctx, "EMP001")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
		return errors.New("abort")
	})
	assert.EqualError(t, err, "abort")
	records, err := s.ListAttendance(ctx, "EMP001")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	err = s.Transaction(ctx, func(ctx context.Context, tx hrms.Store) error {
		if _, err := tx.DeleteAttendanceByEmployee(ctx, "EMP001"); err != nil {
			return err
		}
		return tx.DeleteEmployee(ctx, "e1")
	})
	require.NoError(t, err)

	emp, err := s.FindEmployee(ctx, "e1")
	require.NoError(t, err)
	assert.Nil(t, emp)
	assert.ErrorIs(t, s.DeleteEmployee(ctx, "e1"), hrms.ErrNoRecord)
}
