package v1

type HRMSClient struct {
	Transport  *Transport
	Employees  *EmployeeEndpoint
	Attendance *AttendanceEndpoint
}

// NewHRMSClient builds a client for the API at baseURL, e.g. http://localhost:8090.
func NewHRMSClient(baseURL string) *HRMSClient {
	t := NewTransport(baseURL)
	return &HRMSClient{
		Transport:  t,
		Employees:  &EmployeeEndpoint{transport: t},
		Attendance: &AttendanceEndpoint{transport: t},
	}
}
