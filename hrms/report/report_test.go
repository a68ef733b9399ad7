package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/hrms/store/memstore"
)

func seed(t *testing.T) (*core.Directory, *core.Ledger) {
	ctx := context.Background()
	s := memstore.New()
	directory := core.NewDirectory(s, nil)
	ledger := core.NewLedger(s, time.UTC)

	for _, in := range []core.CreateEmployeeInput{
		{EmployeeID: "EMP002", FullName: "Bob Jones", Email: "bob@example.com", Department: "Sales"},
		{EmployeeID: "EMP001", FullName: "Alice Smith", Email: "alice@example.com", Department: "Engineering"},
	} {
		_, err := directory.Create(ctx, in)
		require.NoError(t, err)
	}
	for _, in := range []core.MarkAttendanceInput{
		{EmployeeID: "EMP001", Date: "2024-01-10", Status: "Present"},
		{EmployeeID: "EMP001", Date: "2024-01-11", Status: "Absent"},
		{EmployeeID: "EMP002", Date: "2024-01-09", Status: "Present"},
	} {
		_, err := ledger.Mark(ctx, in)
		require.NoError(t, err)
	}
	return directory, ledger
}

func TestGenerate(t *testing.T) {
	directory, ledger := seed(t)

	buf, err := Generate(context.Background(), directory, ledger, "")
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{AttendanceSheet, SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(AttendanceSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"No", "Employee ID", "Full Name", "Department", "Date", "Status"},
		{"1", "EMP001", "Alice Smith", "Engineering", "2024-01-11", "Absent"},
		{"2", "EMP001", "Alice Smith", "Engineering", "2024-01-10", "Present"},
		{"3", "EMP002", "Bob Jones", "Sales", "2024-01-09", "Present"},
	}, rows)

	rows, err = f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Employee ID", "Full Name", "Present", "Absent", "Total Days"},
		{"EMP001", "Alice Smith", "1", "1", "2"},
		{"EMP002", "Bob Jones", "1", "0", "1"},
	}, rows)
}

func TestGenerateFiltered(t *testing.T) {
	directory, ledger := seed(t)

	buf, err := Generate(context.Background(), directory, ledger, "EMP002")
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(AttendanceSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "EMP002", rows[1][1])

	rows, err = f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestFilename(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Brisbane")
	require.NoError(t, err)
	now := time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "attendance-2024-01-10.xlsx", Filename(now, time.UTC))
	assert.Equal(t, "attendance-2024-01-11.xlsx", Filename(now, loc))
}
