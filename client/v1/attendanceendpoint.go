package v1

import (
	"context"
	"net/url"

	"hrmslite.com/hrms/hrms/model"
)

type AttendanceInput struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"` // yyyy-MM-dd or RFC 3339
	Status     string `json:"status"`
}

type AttendanceEndpoint struct {
	transport *Transport
}

// List returns every record, or only employeeID's when it is not empty.
func (a *AttendanceEndpoint) List(ctx context.Context, employeeID string) ([]model.Attendance, error) {
	env, err := a.transport.Get(ctx, "/api/attendance", map[string]string{"employeeId": employeeID})
	if err != nil {
		return nil, err
	}
	records, err := decode[[]model.Attendance](env)
	if err != nil {
		return nil, err
	}
	return *records, nil
}

func (a *AttendanceEndpoint) Mark(ctx context.Context, input AttendanceInput) (*model.Attendance, error) {
	env, err := a.transport.Post(ctx, "/api/attendance", input)
	if err != nil {
		return nil, err
	}
	return decode[model.Attendance](env)
}

func (a *AttendanceEndpoint) Summary(ctx context.Context, employeeID string) (*model.AttendanceSummary, error) {
	env, err := a.transport.Get(ctx, "/api/attendance/summary/"+url.PathEscape(employeeID), nil)
	if err != nil {
		return nil, err
	}
	return decode[model.AttendanceSummary](env)
}

func (a *AttendanceEndpoint) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	env, err := a.transport.Get(ctx, "/api/dashboard", nil)
	if err != nil {
		return nil, err
	}
	return decode[model.Dashboard](env)
}
