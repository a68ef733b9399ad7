package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"hrmslite.com/hrms/hrms/model"
	"hrmslite.com/hrms/utils"
)

type MarkAttendanceInput struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Status     string `json:"status" validate:"required"`
}

func (in *MarkAttendanceInput) normalize() {
	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	in.Date = strings.TrimSpace(in.Date)
	in.Status = strings.TrimSpace(in.Status)
}

// Ledger records at most one attendance entry per employee per calendar day.
// Days are computed in loc.
type Ledger struct {
	store Store
	loc   *time.Location
	now   func() time.Time
	newID func() string
}

func NewLedger(store Store, loc *time.Location) *Ledger {
	if loc == nil {
		loc = time.UTC
	}
	return &Ledger{
		store: store,
		loc:   loc,
		now:   storeNow,
		newID: uuid.NewString,
	}
}

func (l *Ledger) Location() *time.Location {
	return l.loc
}

func (l *Ledger) List(ctx context.Context, employeeID string) ([]model.Attendance, error) {
	records, err := l.store.ListAttendance(ctx, strings.TrimSpace(employeeID))
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	if records == nil {
		records = []model.Attendance{}
	}
	return records, nil
}

// NormalizeDate parses s and returns midnight of its calendar day in the
// ledger timezone.
func (l *Ledger) NormalizeDate(s string) (time.Time, error) {
	t, err := utils.ParseISOTime(s, l.loc)
	if err != nil {
		return time.Time{}, err
	}
	return utils.StartOfDay(*t, l.loc), nil
}

func (l *Ledger) Mark(ctx context.Context, in MarkAttendanceInput) (*model.Attendance, error) {
	in.normalize()
	if err := ValidateStruct(in); err != nil {
		return nil, err
	}

	// 1. employee must exist
	emp, err := l.store.FindEmployeeByEmployeeID(ctx, in.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("find employee %s: %w", in.EmployeeID, err)
	}
	if emp == nil {
		return nil, NotFound(MsgEmployeeNotFound)
	}

	// 2. normalize to the calendar day
	day, err := l.NormalizeDate(in.Date)
	if err != nil {
		return nil, InvalidInput(MsgInvalidAttendanceDay)
	}

	// 3. one record per employee per day
	existing, err := l.store.FindAttendance(ctx, in.EmployeeID, day)
	if err != nil {
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	if existing != nil {
		return nil, Conflict(MsgAttendanceExists)
	}

	// 4. status
	status := model.AttendanceStatus(in.Status)
	if !status.Valid() {
		return nil, InvalidInput(MsgInvalidStatus)
	}

	// 5. persist
	record := &model.Attendance{
		ID:         l.newID(),
		EmployeeID: in.EmployeeID,
		Date:       day,
		Status:     status,
		CreatedAt:  l.now(),
	}
	if err := l.store.CreateAttendance(ctx, record); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, Conflict(MsgAttendanceExists)
		}
		return nil, fmt.Errorf("create attendance: %w", err)
	}
	return record, nil
}

// Summary is recomputed from the ledger on every call.
func (l *Ledger) Summary(ctx context.Context, employeeID string) (*model.AttendanceSummary, error) {
	employeeID = strings.TrimSpace(employeeID)
	emp, err := l.store.FindEmployeeByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("find employee %s: %w", employeeID, err)
	}
	if emp == nil {
		return nil, NotFound(MsgEmployeeNotFound)
	}

	present, err := l.store.CountAttendance(ctx, employeeID, model.StatusPresent)
	if err != nil {
		return nil, fmt.Errorf("count present: %w", err)
	}
	absent, err := l.store.CountAttendance(ctx, employeeID, model.StatusAbsent)
	if err != nil {
		return nil, fmt.Errorf("count absent: %w", err)
	}

	return &model.AttendanceSummary{
		EmployeeID:   employeeID,
		FullName:     emp.FullName,
		TotalPresent: present,
		TotalAbsent:  absent,
		TotalDays:    present + absent,
	}, nil
}

// Summaries returns one summary per employee, ordered by employeeId.
func (l *Ledger) Summaries(ctx context.Context) ([]model.AttendanceSummary, error) {
	employees, err := l.store.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	records, err := l.List(ctx, "")
	if err != nil {
		return nil, err
	}

	byEmployee := utils.GroupBy(records, func(a model.Attendance) string { return a.EmployeeID })
	summaries := utils.Map(employees, func(e model.Employee) model.AttendanceSummary {
		recs := byEmployee[e.EmployeeID]
		present := utils.Count(recs, func(a model.Attendance) bool { return a.Status == model.StatusPresent })
		absent := utils.Count(recs, func(a model.Attendance) bool { return a.Status == model.StatusAbsent })
		return model.AttendanceSummary{
			EmployeeID:   e.EmployeeID,
			FullName:     e.FullName,
			TotalPresent: present,
			TotalAbsent:  absent,
			TotalDays:    present + absent,
		}
	})
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].EmployeeID < summaries[j].EmployeeID
	})
	return summaries, nil
}

func (l *Ledger) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	employees, err := l.store.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	records, err := l.List(ctx, "")
	if err != nil {
		return nil, err
	}

	today := utils.StartOfDay(l.now(), l.loc)
	todays := utils.Filter(records, func(a model.Attendance) bool { return a.Date.Equal(today) })

	return &model.Dashboard{
		Date:            today,
		TotalEmployees:  len(employees),
		TotalAttendance: len(records),
		PresentToday:    int(utils.Count(todays, func(a model.Attendance) bool { return a.Status == model.StatusPresent })),
		AbsentToday:     int(utils.Count(todays, func(a model.Attendance) bool { return a.Status == model.StatusAbsent })),
	}, nil
}
