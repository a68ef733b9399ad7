package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/hrms/model"
)

type employeeEntry struct {
	seq int64
	emp model.Employee
}

type attendanceEntry struct {
	seq    int64
	record model.Attendance
}

type dayKey struct {
	employeeID string
	unix       int64
}

// Store keeps everything in process memory. Unique keys are enforced under
// one mutex, the same way the database backends enforce them with indexes.
type Store struct {
	mu         sync.RWMutex
	seq        int64
	employees  map[string]employeeEntry
	attendance map[string]attendanceEntry

	fmu      sync.Mutex
	failures map[string]error
}

func New() *Store {
	return &Store{
		employees:  make(map[string]employeeEntry),
		attendance: make(map[string]attendanceEntry),
		failures:   make(map[string]error),
	}
}

// InjectError makes the next call of op (a method name) fail with err.
func (s *Store) InjectError(op string, err error) {
	s.fmu.Lock()
	defer s.fmu.Unlock()
	s.failures[op] = err
}

func (s *Store) fail(op string) error {
	s.fmu.Lock()
	defer s.fmu.Unlock()
	if err, ok := s.failures[op]; ok {
		delete(s.failures, op)
		return err
	}
	return nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listEmployees()
}

func (s *Store) FindEmployee(ctx context.Context, id string) (*model.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findEmployee(id)
}

func (s *Store) FindEmployeeByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findEmployeeByEmployeeID(employeeID)
}

func (s *Store) FindEmployeeByEmail(ctx context.Context, email string) (*model.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findEmployeeByEmail(email)
}

func (s *Store) CreateEmployee(ctx context.Context, emp *model.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createEmployee(emp)
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteEmployee(id)
}

func (s *Store) ListAttendance(ctx context.Context, employeeID string) ([]model.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listAttendance(employeeID)
}

func (s *Store) FindAttendance(ctx context.Context, employeeID string, date time.Time) (*model.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findAttendance(employeeID, date)
}

func (s *Store) CreateAttendance(ctx context.Context, record *model.Attendance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createAttendance(record)
}

func (s *Store) CountAttendance(ctx context.Context, employeeID string, status model.AttendanceStatus) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countAttendance(employeeID, status)
}

func (s *Store) DeleteAttendanceByEmployee(ctx context.Context, employeeID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteAttendanceByEmployee(employeeID)
}

// Transaction holds the write lock until fn returns, so other callers never
// see intermediate state and a rollback cannot undo their writes. fn must
// only use tx; calling the Store itself from fn deadlocks.
func (s *Store) Transaction(ctx context.Context, fn func(ctx context.Context, tx core.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees := make(map[string]employeeEntry, len(s.employees))
	for k, v := range s.employees {
		employees[k] = v
	}
	attendance := make(map[string]attendanceEntry, len(s.attendance))
	for k, v := range s.attendance {
		attendance[k] = v
	}
	seq := s.seq

	if err := fn(ctx, &tx{s: s}); err != nil {
		s.employees = employees
		s.attendance = attendance
		s.seq = seq
		return err
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.fail("Ping")
}

func (s *Store) Close(ctx context.Context) error {
	return nil
}

// The methods below expect s.mu to be held.

func (s *Store) listEmployees() ([]model.Employee, error) {
	if err := s.fail("ListEmployees"); err != nil {
		return nil, err
	}

	entries := make([]employeeEntry, 0, len(s.employees))
	for _, e := range s.employees {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].emp.CreatedAt.Equal(entries[j].emp.CreatedAt) {
			return entries[i].emp.CreatedAt.After(entries[j].emp.CreatedAt)
		}
		return entries[i].seq > entries[j].seq
	})

	out := make([]model.Employee, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.emp)
	}
	return out, nil
}

func (s *Store) findEmployee(id string) (*model.Employee, error) {
	if err := s.fail("FindEmployee"); err != nil {
		return nil, err
	}
	if e, ok := s.employees[id]; ok {
		emp := e.emp
		return &emp, nil
	}
	return nil, nil
}

func (s *Store) findEmployeeByEmployeeID(employeeID string) (*model.Employee, error) {
	if err := s.fail("FindEmployeeByEmployeeID"); err != nil {
		return nil, err
	}
	return s.findEmployeeWhere(func(e model.Employee) bool { return e.EmployeeID == employeeID }), nil
}

func (s *Store) findEmployeeByEmail(email string) (*model.Employee, error) {
	if err := s.fail("FindEmployeeByEmail"); err != nil {
		return nil, err
	}
	return s.findEmployeeWhere(func(e model.Employee) bool { return e.Email == email }), nil
}

func (s *Store) findEmployeeWhere(match func(model.Employee) bool) *model.Employee {
	for _, e := range s.employees {
		if match(e.emp) {
			emp := e.emp
			return &emp
		}
	}
	return nil
}

func (s *Store) createEmployee(emp *model.Employee) error {
	if err := s.fail("CreateEmployee"); err != nil {
		return err
	}

	if _, ok := s.employees[emp.ID]; ok {
		return &core.DuplicateKeyError{Field: "_id", Err: core.ErrDuplicateKey}
	}
	if s.findEmployeeWhere(func(e model.Employee) bool { return e.EmployeeID == emp.EmployeeID }) != nil {
		return &core.DuplicateKeyError{Field: "employeeId", Err: core.ErrDuplicateKey}
	}
	if s.findEmployeeWhere(func(e model.Employee) bool { return e.Email == emp.Email }) != nil {
		return &core.DuplicateKeyError{Field: "email", Err: core.ErrDuplicateKey}
	}

	s.seq++
	s.employees[emp.ID] = employeeEntry{seq: s.seq, emp: *emp}
	return nil
}

func (s *Store) deleteEmployee(id string) error {
	if err := s.fail("DeleteEmployee"); err != nil {
		return err
	}
	if _, ok := s.employees[id]; !ok {
		return core.ErrNoRecord
	}
	delete(s.employees, id)
	return nil
}

func (s *Store) listAttendance(employeeID string) ([]model.Attendance, error) {
	if err := s.fail("ListAttendance"); err != nil {
		return nil, err
	}

	entries := make([]attendanceEntry, 0, len(s.attendance))
	for _, a := range s.attendance {
		if employeeID == "" || a.record.EmployeeID == employeeID {
			entries = append(entries, a)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].record.Date.Equal(entries[j].record.Date) {
			return entries[i].record.Date.After(entries[j].record.Date)
		}
		return entries[i].seq > entries[j].seq
	})

	out := make([]model.Attendance, 0, len(entries))
	for _, a := range entries {
		out = append(out, a.record)
	}
	return out, nil
}

func (s *Store) findAttendance(employeeID string, date time.Time) (*model.Attendance, error) {
	if err := s.fail("FindAttendance"); err != nil {
		return nil, err
	}
	key := dayKey{employeeID, date.Unix()}
	for _, a := range s.attendance {
		if keyOf(a.record) == key {
			record := a.record
			return &record, nil
		}
	}
	return nil, nil
}

func (s *Store) createAttendance(record *model.Attendance) error {
	if err := s.fail("CreateAttendance"); err != nil {
		return err
	}

	key := keyOf(*record)
	for _, a := range s.attendance {
		if keyOf(a.record) == key {
			return &core.DuplicateKeyError{Field: "employeeId,date", Err: core.ErrDuplicateKey}
		}
	}

	s.seq++
	s.attendance[record.ID] = attendanceEntry{seq: s.seq, record: *record}
	return nil
}

func (s *Store) countAttendance(employeeID string, status model.AttendanceStatus) (int64, error) {
	if err := s.fail("CountAttendance"); err != nil {
		return 0, err
	}
	var n int64
	for _, a := range s.attendance {
		if a.record.EmployeeID == employeeID && a.record.Status == status {
			n++
		}
	}
	return n, nil
}

func (s *Store) deleteAttendanceByEmployee(employeeID string) (int64, error) {
	if err := s.fail("DeleteAttendanceByEmployee"); err != nil {
		return 0, err
	}
	var n int64
	for id, a := range s.attendance {
		if a.record.EmployeeID == employeeID {
			delete(s.attendance, id)
			n++
		}
	}
	return n, nil
}

func keyOf(a model.Attendance) dayKey {
	return dayKey{a.EmployeeID, a.Date.Unix()}
}

var _ core.Store = (*Store)(nil)
