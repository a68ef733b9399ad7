package model

import "time"

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Attendance is one ledger entry. Date is always midnight of the calendar day
// in the ledger's reference timezone.
type Attendance struct {
	ID         string           `gorm:"primaryKey;column:id;type:varchar(36)" bson:"_id" json:"_id"`
	EmployeeID string           `gorm:"column:employee_id;type:varchar(64);not null;uniqueIndex:idx_attendances_employee_date,priority:1" bson:"employeeId" json:"employeeId"`
	Date       time.Time        `gorm:"column:date;not null;uniqueIndex:idx_attendances_employee_date,priority:2" bson:"date" json:"date"`
	Status     AttendanceStatus `gorm:"column:status;type:varchar(16);not null" bson:"status" json:"status"`
	CreatedAt  time.Time        `gorm:"column:created_at;not null" bson:"createdAt" json:"createdAt"`
}

func (Attendance) TableName() string {
	return "attendances"
}
