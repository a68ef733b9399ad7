package gormstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"hrmslite.com/hrms/core"
	hrms "hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/hrms/model"
)

const (
	mysqlDuplicateEntry   = 1062
	postgresUniqueViolate = "23505"
)

// Store keeps employees and attendance in a SQL database through gorm.
type Store struct {
	dm *core.DatabaseManager
	db *gorm.DB
}

func New(dm *core.DatabaseManager) *Store {
	return &Store{dm: dm, db: dm.DB}
}

// Models lists every table this store needs, in creation order.
func Models() []any {
	return []any{&model.Employee{}, &model.Attendance{}}
}

func (s *Store) Migrate(ctx context.Context) error {
	return s.dm.Migrate(ctx, Models()...)
}

func (s *Store) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&employees).Error
	return employees, err
}

func (s *Store) FindEmployee(ctx context.Context, id string) (*model.Employee, error) {
	return s.findEmployee(ctx, "id = ?", id)
}

func (s *Store) FindEmployeeByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error) {
	return s.findEmployee(ctx, "employee_id = ?", employeeID)
}

func (s *Store) FindEmployeeByEmail(ctx context.Context, email string) (*model.Employee, error) {
	return s.findEmployee(ctx, "email = ?", email)
}

func (s *Store) findEmployee(ctx context.Context, query string, arg any) (*model.Employee, error) {
	var emp model.Employee
	err := s.db.WithContext(ctx).Where(query, arg).Take(&emp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) CreateEmployee(ctx context.Context, emp *model.Employee) error {
	return translate(s.db.WithContext(ctx).Create(emp).Error)
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Employee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return hrms.ErrNoRecord
	}
	return nil
}

func (s *Store) ListAttendance(ctx context.Context, employeeID string) ([]model.Attendance, error) {
	var records []model.Attendance
	query := s.db.WithContext(ctx).Order("date DESC").Order("created_at DESC")
	if employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}
	err := query.Find(&records).Error
	return records, err
}

func (s *Store) FindAttendance(ctx context.Context, employeeID string, date time.Time) (*model.Attendance, error) {
	var record model.Attendance
	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date.UTC()).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store) CreateAttendance(ctx context.Context, record *model.Attendance) error {
	row := *record
	row.Date = row.Date.UTC()
	return translate(s.db.WithContext(ctx).Create(&row).Error)
}

func (s *Store) CountAttendance(ctx context.Context, employeeID string, status model.AttendanceStatus) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.Attendance{}).
		Where("employee_id = ? AND status = ?", employeeID, status).
		Count(&n).Error
	return n, err
}

func (s *Store) DeleteAttendanceByEmployee(ctx context.Context, employeeID string) (int64, error) {
	result := s.db.WithContext(ctx).Where("employee_id = ?", employeeID).Delete(&model.Attendance{})
	return result.RowsAffected, result.Error
}

func (s *Store) Transaction(ctx context.Context, fn func(ctx context.Context, tx hrms.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &Store{dm: s.dm, db: tx})
	})
}

func (s *Store) Ping(ctx context.Context) error {
	return s.dm.Ping(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	return s.dm.Close()
}

// translate maps unique index violations onto hrms.ErrDuplicateKey, naming
// the field from the index the driver reports.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return &hrms.DuplicateKeyError{Field: duplicateField(myErr.Message), Err: err}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == postgresUniqueViolate {
		return &hrms.DuplicateKeyError{Field: duplicateField(pgErr.ConstraintName), Err: err}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &hrms.DuplicateKeyError{Field: duplicateField(err.Error()), Err: err}
	}
	return err
}

func duplicateField(msg string) string {
	switch {
	case strings.Contains(msg, "idx_employees_employee_id"):
		return "employeeId"
	case strings.Contains(msg, "idx_employees_email"):
		return "email"
	case strings.Contains(msg, "idx_attendances_employee_date"):
		return "employeeId,date"
	}
	return ""
}

var _ hrms.Store = (*Store)(nil)
