package memstore

import (
	"context"
	"time"

	"hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/hrms/model"
)

// tx is the store handed to a Transaction callback. The callback already
// holds s.mu, so tx calls the unlocked methods.
type tx struct {
	s *Store
}

func (t *tx) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	return t.s.listEmployees()
}

func (t *tx) FindEmployee(ctx context.Context, id string) (*model.Employee, error) {
	return t.s.findEmployee(id)
}

func (t *tx) FindEmployeeByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error) {
	return t.s.findEmployeeByEmployeeID(employeeID)
}

func (t *tx) FindEmployeeByEmail(ctx context.Context, email string) (*model.Employee, error) {
	return t.s.findEmployeeByEmail(email)
}

func (t *tx) CreateEmployee(ctx context.Context, emp *model.Employee) error {
	return t.s.createEmployee(emp)
}

func (t *tx) DeleteEmployee(ctx context.Context, id string) error {
	return t.s.deleteEmployee(id)
}

func (t *tx) ListAttendance(ctx context.Context, employeeID string) ([]model.Attendance, error) {
	return t.s.listAttendance(employeeID)
}

func (t *tx) FindAttendance(ctx context.Context, employeeID string, date time.Time) (*model.Attendance, error) {
	return t.s.findAttendance(employeeID, date)
}

func (t *tx) CreateAttendance(ctx context.Context, record *model.Attendance) error {
	return t.s.createAttendance(record)
}

func (t *tx) CountAttendance(ctx context.Context, employeeID string, status model.AttendanceStatus) (int64, error) {
	return t.s.countAttendance(employeeID, status)
}

func (t *tx) DeleteAttendanceByEmployee(ctx context.Context, employeeID string) (int64, error) {
	return t.s.deleteAttendanceByEmployee(employeeID)
}

// Transaction joins the outer transaction.
func (t *tx) Transaction(ctx context.Context, fn func(ctx context.Context, tx core.Store) error) error {
	return fn(ctx, t)
}

func (t *tx) Ping(ctx context.Context) error {
	return t.s.fail("Ping")
}

func (t *tx) Close(ctx context.Context) error {
	return nil
}

var _ core.Store = (*tx)(nil)
