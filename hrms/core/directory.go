package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"hrmslite.com/hrms/hrms/model"
)

type CreateEmployeeInput struct {
	EmployeeID string `json:"employeeId" validate:"required,max=64"`
	FullName   string `json:"fullName" validate:"required,max=255"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Department string `json:"department" validate:"required,max=255"`
}

func (in *CreateEmployeeInput) normalize() {
	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Department = strings.TrimSpace(in.Department)
}

// Directory owns employee records and the cascade into the ledger on delete.
type Directory struct {
	store    Store
	notifier Notifier
	now      func() time.Time
	newID    func() string
}

func NewDirectory(store Store, notifier Notifier) *Directory {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Directory{
		store:    store,
		notifier: notifier,
		now:      storeNow,
		newID:    uuid.NewString,
	}
}

func (d *Directory) List(ctx context.Context) ([]model.Employee, error) {
	employees, err := d.store.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	if employees == nil {
		employees = []model.Employee{}
	}
	return employees, nil
}

func (d *Directory) Get(ctx context.Context, id string) (*model.Employee, error) {
	emp, err := d.store.FindEmployee(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("find employee %s: %w", id, err)
	}
	if emp == nil {
		return nil, NotFound(MsgEmployeeNotFound)
	}
	return emp, nil
}

func (d *Directory) Create(ctx context.Context, in CreateEmployeeInput) (*model.Employee, error) {
	in.normalize()
	if err := ValidateStruct(in); err != nil {
		return nil, err
	}

	// employeeId is checked before email so a request duplicating both
	// always reports the employeeId conflict.
	existing, err := d.store.FindEmployeeByEmployeeID(ctx, in.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("find employee by employee id: %w", err)
	}
	if existing != nil {
		return nil, Conflict(MsgEmployeeIDExists)
	}

	existing, err = d.store.FindEmployeeByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("find employee by email: %w", err)
	}
	if existing != nil {
		return nil, Conflict(MsgEmailExists)
	}

	now := d.now()
	emp := &model.Employee{
		ID:         d.newID(),
		EmployeeID: in.EmployeeID,
		FullName:   in.FullName,
		Email:      in.Email,
		Department: in.Department,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := d.store.CreateEmployee(ctx, emp); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, employeeConflict(err)
		}
		return nil, fmt.Errorf("create employee: %w", err)
	}

	if err := d.notifier.EmployeeCreated(ctx, *emp); err != nil {
		fmt.Printf("[ERROR] notify employee %s created: %v\n", emp.EmployeeID, err)
	}
	return emp, nil
}

// Delete removes the employee and every attendance record carrying its
// employeeId. Attendance goes first, inside one store transaction.
func (d *Directory) Delete(ctx context.Context, id string) (*model.Employee, int64, error) {
	emp, err := d.Get(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	var removed int64
	err = d.store.Transaction(ctx, func(ctx context.Context, tx Store) error {
		n, err := tx.DeleteAttendanceByEmployee(ctx, emp.EmployeeID)
		if err != nil {
			return fmt.Errorf("delete attendance of %s: %w", emp.EmployeeID, err)
		}
		removed = n

		if err := tx.DeleteEmployee(ctx, emp.ID); err != nil {
			return fmt.Errorf("delete employee %s: %w", emp.EmployeeID, err)
		}
		return nil
	})
	if errors.Is(err, ErrNoRecord) {
		// deleted concurrently between lookup and transaction
		return nil, 0, NotFound(MsgEmployeeNotFound)
	}
	if err != nil {
		return nil, 0, err
	}

	if err := d.notifier.EmployeeDeleted(ctx, *emp, removed); err != nil {
		fmt.Printf("[ERROR] notify employee %s deleted: %v\n", emp.EmployeeID, err)
	}
	return emp, removed, nil
}

func employeeConflict(err error) *Error {
	switch duplicateField(err) {
	case "employeeId":
		return Conflict(MsgEmployeeIDExists)
	case "email":
		return Conflict(MsgEmailExists)
	}
	return Conflict(MsgEmployeeExists)
}

// storeNow is millisecond precision so values survive a round trip through
// every backend unchanged.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
