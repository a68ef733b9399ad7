package model

import "time"

// Employee is keyed two ways: ID is assigned by the store and only used as a
// handle, EmployeeID is the business key every other record refers to.
type Employee struct {
	ID         string    `gorm:"primaryKey;column:id;type:varchar(36)" bson:"_id" json:"_id"`
	EmployeeID string    `gorm:"column:employee_id;type:varchar(64);not null;uniqueIndex:idx_employees_employee_id" bson:"employeeId" json:"employeeId"`
	FullName   string    `gorm:"column:full_name;type:varchar(255);not null" bson:"fullName" json:"fullName"`
	Email      string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_employees_email" bson:"email" json:"email"`
	Department string    `gorm:"column:department;type:varchar(255);not null" bson:"department" json:"department"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;index" bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null" bson:"updatedAt" json:"updatedAt"`
}

func (Employee) TableName() string {
	return "employees"
}
