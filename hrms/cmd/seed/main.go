package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	v1 "hrmslite.com/hrms/client/v1"
	"hrmslite.com/hrms/utils"
)

var employees = []v1.EmployeeInput{
	{EmployeeID: "EMP001", FullName: "Alice Smith", Email: "alice.smith@example.com", Department: "Engineering"},
	{EmployeeID: "EMP002", FullName: "Bob Jones", Email: "bob.jones@example.com", Department: "Sales"},
	{EmployeeID: "EMP003", FullName: "Carol White", Email: "carol.white@example.com", Department: "Finance"},
	{EmployeeID: "EMP004", FullName: "Dan Brown", Email: "dan.brown@example.com", Department: "Engineering"},
	{EmployeeID: "EMP005", FullName: "Eve Black", Email: "eve.black@example.com", Department: "Human Resources"},
}

// Seeds a running API with sample employees and the last few days of attendance.
func main() {
	url := flag.String("url", "http://localhost:8090", "API base URL")
	days := flag.Int("days", 5, "days of attendance to mark, ending today")
	flag.Parse()

	ctx := context.Background()
	client := v1.NewHRMSClient(*url)

	for _, input := range employees {
		if _, err := client.Employees.Create(ctx, input); err != nil {
			if !isBadRequest(err) {
				log.Fatalf("failed to create %s: %v", input.EmployeeID, err)
			}
			fmt.Printf("[INFO] skip %s: %v\n", input.EmployeeID, err)
			continue
		}
		fmt.Printf("[INFO] created %s\n", input.EmployeeID)
	}

	today := time.Now()
	marked := 0
	for d := 0; d < *days; d++ {
		date := today.AddDate(0, 0, -d).Format(utils.DateLayout)
		for i, emp := range employees {
			// every fourth (employee, day) pair is an absence
			status := utils.FormatBoolean((i+d)%4 == 3, "Absent", "Present")
			_, err := client.Attendance.Mark(ctx, v1.AttendanceInput{EmployeeID: emp.EmployeeID, Date: date, Status: status})
			if err != nil {
				if !isBadRequest(err) {
					log.Fatalf("failed to mark %s on %s: %v", emp.EmployeeID, date, err)
				}
				continue
			}
			marked++
		}
	}
	fmt.Printf("[INFO] marked %d attendance records\n", marked)
}

func isBadRequest(err error) bool {
	var apiErr *v1.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest
}
