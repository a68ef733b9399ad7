package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hrmslite.com/hrms/hrms/store/memstore"
	common "hrmslite.com/hrms/hrms/web/common"
	"hrmslite.com/hrms/hrms/web/routes"
)

func newClient(t *testing.T) *HRMSClient {
	gin.SetMode(gin.TestMode)
	s := memstore.New()
	router := routes.New(s, common.NewHandler(s, nil, time.UTC), routes.Options{})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return NewHRMSClient(srv.URL)
}

func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)

	emp, err := client.Employees.Create(ctx, EmployeeInput{
		EmployeeID: "EMP001", FullName: "Alice Smith", Email: "alice@example.com", Department: "Engineering",
	})
	require.NoError(t, err)

	got, err := client.Employees.Get(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, emp, got)

	employees, err := client.Employees.List(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 1)

	_, err = client.Attendance.Mark(ctx, AttendanceInput{EmployeeID: "EMP001", Date: "2024-01-10", Status: "Present"})
	require.NoError(t, err)

	records, err := client.Attendance.List(ctx, "EMP001")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	summary, err := client.Attendance.Summary(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalDays)

	dashboard, err := client.Attendance.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dashboard.TotalEmployees)

	require.NoError(t, client.Employees.Delete(ctx, emp.ID))
	records, err = client.Attendance.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClientAPIError(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)

	_, err := client.Employees.Get(ctx, "missing")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Employee not found", apiErr.Message)

	_, err = client.Attendance.Mark(ctx, AttendanceInput{})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Detail, "validation failed")
}

func TestClientNonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHRMSClient(srv.URL).Employees.List(context.Background())
	assert.ErrorContains(t, err, "GET /api/employees failed with status code 502")
}
