package model

import "time"

type AttendanceSummary struct {
	EmployeeID   string `json:"employeeId"`
	FullName     string `json:"fullName"`
	TotalPresent int64  `json:"totalPresent"`
	TotalAbsent  int64  `json:"totalAbsent"`
	TotalDays    int64  `json:"totalDays"`
}

type Dashboard struct {
	Date            time.Time `json:"date"`
	TotalEmployees  int       `json:"totalEmployees"`
	TotalAttendance int       `json:"totalAttendance"`
	PresentToday    int       `json:"presentToday"`
	AbsentToday     int       `json:"absentToday"`
}
