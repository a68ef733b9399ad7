package core

import (
	"context"

	"hrmslite.com/hrms/hrms/model"
)

// Notifier receives directory events and unexpected failures. Delivery is
// best effort; errors are logged by the caller and never change an outcome.
type Notifier interface {
	EmployeeCreated(ctx context.Context, emp model.Employee) error
	EmployeeDeleted(ctx context.Context, emp model.Employee, attendanceRemoved int64) error
	Failure(ctx context.Context, operation string, err error) error
}

type NopNotifier struct{}

func (NopNotifier) EmployeeCreated(context.Context, model.Employee) error { return nil }

func (NopNotifier) EmployeeDeleted(context.Context, model.Employee, int64) error { return nil }

func (NopNotifier) Failure(context.Context, string, error) error { return nil }
