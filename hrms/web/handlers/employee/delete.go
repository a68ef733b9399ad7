package employee

import (
	"net/http"

	"github.com/gin-gonic/gin"
	web "hrmslite.com/hrms/web/common"
)

type DeleteResultDTO struct {
	ID                string `json:"_id"`
	EmployeeID        string `json:"employeeId"`
	AttendanceRemoved int64  `json:"attendanceRemoved"`
}

func (ep *Endpoint) Delete(c *gin.Context) {
	emp, removed, err := ep.base.Directory.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		ep.base.Fail(c, "Error deleting employee", err)
		return
	}
	c.JSON(http.StatusOK, web.NewMessageResponse(MsgDeleted, DeleteResultDTO{
		ID:                emp.ID,
		EmployeeID:        emp.EmployeeID,
		AttendanceRemoved: removed,
	}))
}
