package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"hrmslite.com/hrms/utils"
)

type ImportOutcome string

const (
	OutcomeMarked   ImportOutcome = "marked"
	OutcomeConflict ImportOutcome = "conflict"
	OutcomeNotFound ImportOutcome = "not_found"
	OutcomeInvalid  ImportOutcome = "invalid"
)

const importColumns = 3

type ImportRow struct {
	Row        int           `json:"row"`
	EmployeeID string        `json:"employeeId"`
	Date       string        `json:"date"`
	Status     string        `json:"status"`
	Outcome    ImportOutcome `json:"outcome"`
	Message    string        `json:"message,omitempty"`
}

type ImportResult struct {
	Rows   []ImportRow `json:"rows"`
	Marked int         `json:"marked"`
	Failed int         `json:"failed"`
}

// Import marks attendance for every row of an employeeId,date,status CSV.
// Each row goes through Mark, so the usual rules apply row by row. A file
// with malformed rows is rejected before anything is written.
func (l *Ledger) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, err := utils.ParseCSV(r)
	if err != nil {
		return nil, InvalidInput(fmt.Sprintf("Invalid CSV: %v", err))
	}
	if len(rows) > 0 && isImportHeader(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, InvalidInput("CSV file has no attendance rows")
	}

	var problems []string
	for i, row := range rows {
		if len(row) != importColumns {
			problems = append(problems, fmt.Sprintf("row %d: expected %d columns, got %d", i+1, importColumns, len(row)))
		}
	}
	if len(problems) > 0 {
		return nil, InvalidInput(problems...)
	}

	result := &ImportResult{Rows: make([]ImportRow, 0, len(rows))}
	for i, row := range rows {
		item := ImportRow{
			Row:        i + 1,
			EmployeeID: strings.TrimSpace(row[0]),
			Date:       strings.TrimSpace(row[1]),
			Status:     strings.TrimSpace(row[2]),
		}

		_, err := l.Mark(ctx, MarkAttendanceInput{EmployeeID: item.EmployeeID, Date: item.Date, Status: item.Status})
		switch KindOf(err) {
		case KindUnexpected:
			if err != nil {
				return nil, fmt.Errorf("import row %d: %w", item.Row, err)
			}
			item.Outcome = OutcomeMarked
			result.Marked++
		case KindConflict:
			item.Outcome, item.Message = OutcomeConflict, messageOf(err)
		case KindNotFound:
			item.Outcome, item.Message = OutcomeNotFound, messageOf(err)
		case KindInvalidInput:
			item.Outcome, item.Message = OutcomeInvalid, messageOf(err)
		}
		if item.Outcome != OutcomeMarked {
			result.Failed++
		}
		result.Rows = append(result.Rows, item)
	}
	return result, nil
}

func isImportHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "employeeId")
}

func messageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
