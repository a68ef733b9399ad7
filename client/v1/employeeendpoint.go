package v1

import (
	"context"
	"net/url"

	"hrmslite.com/hrms/hrms/model"
)

type EmployeeInput struct {
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type EmployeeEndpoint struct {
	transport *Transport
}

func (e *EmployeeEndpoint) List(ctx context.Context) ([]model.Employee, error) {
	env, err := e.transport.Get(ctx, "/api/employees", nil)
	if err != nil {
		return nil, err
	}
	employees, err := decode[[]model.Employee](env)
	if err != nil {
		return nil, err
	}
	return *employees, nil
}

// Get fetches by internal id (the _id field).
func (e *EmployeeEndpoint) Get(ctx context.Context, id string) (*model.Employee, error) {
	env, err := e.transport.Get(ctx, "/api/employees/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return decode[model.Employee](env)
}

func (e *EmployeeEndpoint) Create(ctx context.Context, input EmployeeInput) (*model.Employee, error) {
	env, err := e.transport.Post(ctx, "/api/employees", input)
	if err != nil {
		return nil, err
	}
	return decode[model.Employee](env)
}

func (e *EmployeeEndpoint) Delete(ctx context.Context, id string) error {
	_, err := e.transport.Delete(ctx, "/api/employees/"+url.PathEscape(id))
	return err
}
