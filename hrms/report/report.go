package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/hrms/model"
	"hrmslite.com/hrms/utils"
)

const (
	ContentType     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	AttendanceSheet = "Attendance"
	SummarySheet    = "Summary"
)

var (
	attendanceHeaders = []string{"No", "Employee ID", "Full Name", "Department", "Date", "Status"}
	summaryHeaders    = []string{"Employee ID", "Full Name", "Present", "Absent", "Total Days"}
)

// Filename names the workbook after the day it was generated in loc.
func Filename(now time.Time, loc *time.Location) string {
	return fmt.Sprintf("attendance-%s.xlsx", now.In(loc).Format(utils.DateLayout))
}

// Generate builds the attendance workbook. An empty employeeID covers every
// employee, like the attendance list.
func Generate(ctx context.Context, directory *core.Directory, ledger *core.Ledger, employeeID string) (*bytes.Buffer, error) {
	employees, err := directory.List(ctx)
	if err != nil {
		return nil, err
	}
	records, err := ledger.List(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	summaries, err := ledger.Summaries(ctx)
	if err != nil {
		return nil, err
	}
	if employeeID != "" {
		summaries = utils.Filter(summaries, func(s model.AttendanceSummary) bool { return s.EmployeeID == employeeID })
	}

	byID := make(map[string]model.Employee, len(employees))
	for _, e := range employees {
		byID[e.EmployeeID] = e
	}

	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(file.GetActiveSheetIndex()), AttendanceSheet); err != nil {
		return nil, err
	}
	if err := writeHeaders(file, AttendanceSheet, attendanceHeaders); err != nil {
		return nil, err
	}
	for index, record := range records {
		emp := byID[record.EmployeeID]
		row := []any{
			index + 1,
			record.EmployeeID,
			emp.FullName,
			emp.Department,
			record.Date.In(ledger.Location()).Format(utils.DateLayout),
			string(record.Status),
		}
		if err := writeRow(file, AttendanceSheet, index+2, row); err != nil {
			return nil, err
		}
	}

	if _, err := file.NewSheet(SummarySheet); err != nil {
		return nil, err
	}
	if err := writeHeaders(file, SummarySheet, summaryHeaders); err != nil {
		return nil, err
	}
	for index, s := range summaries {
		row := []any{s.EmployeeID, s.FullName, s.TotalPresent, s.TotalAbsent, s.TotalDays}
		if err := writeRow(file, SummarySheet, index+2, row); err != nil {
			return nil, err
		}
	}

	return file.WriteToBuffer()
}

func writeHeaders(file *excelize.File, sheet string, headers []string) error {
	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	return writeRow(file, sheet, 1, row)
}

func writeRow(file *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return file.SetSheetRow(sheet, cell, &values)
}
