package mongostore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/hrms/model"
)

const (
	EmployeesCollection   = "employees"
	AttendancesCollection = "attendances"
)

type Options struct {
	URI          string
	DatabaseName string
	// Transactions enables multi-document transactions for the cascade
	// delete. The server must be a replica set or sharded cluster.
	Transactions bool
}

type Store struct {
	client       *mongo.Client
	employees    *mongo.Collection
	attendances  *mongo.Collection
	transactions bool
}

func Connect(ctx context.Context, opts Options) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(opts.DatabaseName)
	return &Store{
		client:       client,
		employees:    db.Collection(EmployeesCollection),
		attendances:  db.Collection(AttendancesCollection),
		transactions: opts.Transactions,
	}, nil
}

// EnsureIndexes creates the unique indexes the directory and ledger rely on.
// Creating an index that already exists is a no-op.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.employees.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employeeId", Value: 1}},
			Options: options.Index().SetName("employeeId_1").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_1").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("createdAt_-1"),
		},
	})
	if err != nil {
		return fmt.Errorf("create employee indexes: %w", err)
	}

	_, err = s.attendances.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetName("employeeId_1_date_1").SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create attendance indexes: %w", err)
	}
	return nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	cursor, err := s.employees.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	employees := []model.Employee{}
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *Store) FindEmployee(ctx context.Context, id string) (*model.Employee, error) {
	return s.findEmployee(ctx, bson.M{"_id": id})
}

func (s *Store) FindEmployeeByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error) {
	return s.findEmployee(ctx, bson.M{"employeeId": employeeID})
}

func (s *Store) FindEmployeeByEmail(ctx context.Context, email string) (*model.Employee, error) {
	return s.findEmployee(ctx, bson.M{"email": email})
}

func (s *Store) findEmployee(ctx context.Context, filter bson.M) (*model.Employee, error) {
	var emp model.Employee
	err := s.employees.FindOne(ctx, filter).Decode(&emp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) CreateEmployee(ctx context.Context, emp *model.Employee) error {
	_, err := s.employees.InsertOne(ctx, emp)
	return translate(err, employeeField)
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	res, err := s.employees.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return core.ErrNoRecord
	}
	return nil
}

func (s *Store) ListAttendance(ctx context.Context, employeeID string) ([]model.Attendance, error) {
	filter := bson.M{}
	if employeeID != "" {
		filter["employeeId"] = employeeID
	}
	cursor, err := s.attendances.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	records := []model.Attendance{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) FindAttendance(ctx context.Context, employeeID string, date time.Time) (*model.Attendance, error) {
	var record model.Attendance
	err := s.attendances.FindOne(ctx, bson.M{"employeeId": employeeID, "date": date}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store) CreateAttendance(ctx context.Context, record *model.Attendance) error {
	_, err := s.attendances.InsertOne(ctx, record)
	return translate(err, func(string) string { return "employeeId,date" })
}

func (s *Store) CountAttendance(ctx context.Context, employeeID string, status model.AttendanceStatus) (int64, error) {
	return s.attendances.CountDocuments(ctx, bson.M{"employeeId": employeeID, "status": status})
}

func (s *Store) DeleteAttendanceByEmployee(ctx context.Context, employeeID string) (int64, error) {
	res, err := s.attendances.DeleteMany(ctx, bson.M{"employeeId": employeeID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Transaction runs fn inside a multi-document transaction when enabled.
// Otherwise fn runs directly and its writes are applied one by one.
func (s *Store) Transaction(ctx context.Context, fn func(ctx context.Context, tx core.Store) error) error {
	if !s.transactions {
		return fn(ctx, s)
	}

	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc, s)
	})
	return err
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func translate(err error, field func(msg string) string) error {
	if err == nil || !mongo.IsDuplicateKeyError(err) {
		return err
	}
	return &core.DuplicateKeyError{Field: field(err.Error()), Err: err}
}

// employeeField reads the index name out of an E11000 message, e.g.
// "E11000 duplicate key error collection: hrms.employees index: email_1 dup key".
func employeeField(msg string) string {
	switch {
	case strings.Contains(msg, "index: employeeId_1 "):
		return "employeeId"
	case strings.Contains(msg, "index: email_1 "):
		return "email"
	}
	return ""
}

var _ core.Store = (*Store)(nil)
