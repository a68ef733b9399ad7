package employee

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"hrmslite.com/hrms/hrms/core"
	web "hrmslite.com/hrms/web/common"
)

func (ep *Endpoint) Create(c *gin.Context) {
	var input core.CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ep.base.Fail(c, "Error creating employee", web.BindingError(err))
		return
	}

	emp, err := ep.base.Directory.Create(c.Request.Context(), input)
	if err != nil {
		ep.base.Fail(c, "Error creating employee", err)
		return
	}
	c.JSON(http.StatusCreated, web.NewMessageResponse(MsgCreated, emp))
}
