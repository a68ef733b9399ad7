package employee

import (
	"net/http"

	"github.com/gin-gonic/gin"
	web "hrmslite.com/hrms/web/common"
)

func (ep *Endpoint) List(c *gin.Context) {
	employees, err := ep.base.Directory.List(c.Request.Context())
	if err != nil {
		ep.base.Fail(c, "Error fetching employees", err)
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(employees))
}

func (ep *Endpoint) Get(c *gin.Context) {
	emp, err := ep.base.Directory.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		ep.base.Fail(c, "Error fetching employee", err)
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(emp))
}
