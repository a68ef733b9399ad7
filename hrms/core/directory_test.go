package core_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/hrms/model"
	"hrmslite.com/hrms/hrms/store/memstore"
)

type countingNotifier struct {
	created, deleted int
	removed          int64
	err              error
}

func (n *countingNotifier) EmployeeCreated(context.Context, model.Employee) error {
	n.created++
	return n.err
}

func (n *countingNotifier) EmployeeDeleted(_ context.Context, _ model.Employee, removed int64) error {
	n.deleted++
	n.removed = removed
	return n.err
}

func (n *countingNotifier) Failure(context.Context, string, error) error { return n.err }

func alice() core.CreateEmployeeInput {
	return core.CreateEmployeeInput{EmployeeID: "EMP001", FullName: "Alice Smith", Email: "alice@example.com", Department: "Engineering"}
}

func TestDirectoryCreate(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	n := &countingNotifier{}
	d := core.NewDirectory(s, n)

	in := alice()
	in.Email = "  ALICE@Example.COM "
	emp, err := d.Create(ctx, in)
	require.NoError(t, err)

	assert.NotEmpty(t, emp.ID)
	assert.Equal(t, "alice@example.com", emp.Email)
	assert.Equal(t, emp.CreatedAt, emp.UpdatedAt)
	assert.Equal(t, time.UTC, emp.CreatedAt.Location())
	assert.Equal(t, 1, n.created)

	got, err := d.Get(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, emp, got)
}

func TestDirectoryCreateNotifierErrorIgnored(t *testing.T) {
	d := core.NewDirectory(memstore.New(), &countingNotifier{err: errors.New("slack down")})
	_, err := d.Create(context.Background(), alice())
	assert.NoError(t, err)
}

func TestDirectoryCreateValidation(t *testing.T) {
	d := core.NewDirectory(memstore.New(), nil)

	_, err := d.Create(context.Background(), core.CreateEmployeeInput{Email: "nope"})
	require.Error(t, err)
	assert.Equal(t, core.KindInvalidInput, core.KindOf(err))

	var e *core.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, []string{
		"Field 'employeeId' is required",
		"Field 'fullName' is required",
		"Field 'email' must be a valid email",
		"Field 'department' is required",
	}, e.Details)
}

func TestDirectoryCreateConflicts(t *testing.T) {
	ctx := context.Background()
	d := core.NewDirectory(memstore.New(), nil)
	_, err := d.Create(ctx, alice())
	require.NoError(t, err)

	dupID := alice()
	dupID.Email = "other@example.com"
	_, err = d.Create(ctx, dupID)
	assert.Equal(t, core.KindConflict, core.KindOf(err))
	assert.EqualError(t, err, core.MsgEmployeeIDExists)

	dupEmail := alice()
	dupEmail.EmployeeID = "EMP002"
	_, err = d.Create(ctx, dupEmail)
	assert.EqualError(t, err, core.MsgEmailExists)

	_, err = d.Create(ctx, alice())
	assert.EqualError(t, err, core.MsgEmployeeIDExists)
}

func TestDirectoryCreateWriteTimeDuplicate(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"employeeId", core.MsgEmployeeIDExists},
		{"email", core.MsgEmailExists},
		{"", core.MsgEmployeeExists},
	}
	for _, tt := range tests {
		s := memstore.New()
		s.InjectError("CreateEmployee", &core.DuplicateKeyError{Field: tt.field, Err: errors.New("E11000")})
		_, err := core.NewDirectory(s, nil).Create(context.Background(), alice())
		assert.Equal(t, core.KindConflict, core.KindOf(err))
		assert.EqualError(t, err, tt.want)
	}
}

func TestDirectoryCreateStoreFailure(t *testing.T) {
	s := memstore.New()
	s.InjectError("FindEmployeeByEmail", errors.New("timeout"))
	_, err := core.NewDirectory(s, nil).Create(context.Background(), alice())
	assert.Equal(t, core.KindUnexpected, core.KindOf(err))
	assert.ErrorContains(t, err, "timeout")
}

func TestDirectoryGetNotFound(t *testing.T) {
	_, err := core.NewDirectory(memstore.New(), nil).Get(context.Background(), "missing")
	assert.Equal(t, core.KindNotFound, core.KindOf(err))
	assert.EqualError(t, err, core.MsgEmployeeNotFound)
}

func TestDirectoryDelete(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	n := &countingNotifier{}
	d := core.NewDirectory(s, n)
	l := core.NewLedger(s, time.UTC)

	emp, err := d.Create(ctx, alice())
	require.NoError(t, err)
	for _, date := range []string{"2024-01-09", "2024-01-10"} {
		_, err := l.Mark(ctx, core.MarkAttendanceInput{EmployeeID: "EMP001", Date: date, Status: "Present"})
		require.NoError(t, err)
	}

	deleted, removed, err := d.Delete(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, deleted.ID)
	assert.Equal(t, int64(2), removed)
	assert.Equal(t, 1, n.deleted)
	assert.Equal(t, int64(2), n.removed)

	records, err := l.List(ctx, "EMP001")
	require.NoError(t, err)
	assert.Empty(t, records)

	_, _, err = d.Delete(ctx, emp.ID)
	assert.Equal(t, core.KindNotFound, core.KindOf(err))
}

func TestDirectoryDeleteConcurrentlyRemoved(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	d := core.NewDirectory(s, nil)
	emp, err := d.Create(ctx, alice())
	require.NoError(t, err)

	s.InjectError("DeleteEmployee", core.ErrNoRecord)
	_, _, err = d.Delete(ctx, emp.ID)
	assert.Equal(t, core.KindNotFound, core.KindOf(err))
}
