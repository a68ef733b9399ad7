package core

import (
	"context"
	"time"

	"hrmslite.com/hrms/hrms/model"
)

// Find methods return (nil, nil) when nothing matches.
type EmployeeStore interface {
	ListEmployees(ctx context.Context) ([]model.Employee, error)
	FindEmployee(ctx context.Context, id string) (*model.Employee, error)
	FindEmployeeByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error)
	FindEmployeeByEmail(ctx context.Context, email string) (*model.Employee, error)
	CreateEmployee(ctx context.Context, emp *model.Employee) error
	DeleteEmployee(ctx context.Context, id string) error
}

type AttendanceStore interface {
	// ListAttendance orders by date descending; an empty employeeID lists all.
	ListAttendance(ctx context.Context, employeeID string) ([]model.Attendance, error)
	FindAttendance(ctx context.Context, employeeID string, date time.Time) (*model.Attendance, error)
	CreateAttendance(ctx context.Context, a *model.Attendance) error
	CountAttendance(ctx context.Context, employeeID string, status model.AttendanceStatus) (int64, error)
	DeleteAttendanceByEmployee(ctx context.Context, employeeID string) (int64, error)
}

type Store interface {
	EmployeeStore
	AttendanceStore

	// Transaction runs fn against a store bound to one transaction where the
	// backend supports it. fn must use the ctx and tx it is given.
	Transaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
