package attendance

import (
	"net/http"

	"github.com/gin-gonic/gin"
	web "hrmslite.com/hrms/web/common"
)

func (ep *Endpoint) List(c *gin.Context) {
	records, err := ep.base.Ledger.List(c.Request.Context(), c.Query("employeeId"))
	if err != nil {
		ep.base.Fail(c, "Error fetching attendance records", err)
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(records))
}

func (ep *Endpoint) Summary(c *gin.Context) {
	summary, err := ep.base.Ledger.Summary(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		ep.base.Fail(c, "Error fetching attendance summary", err)
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(summary))
}
