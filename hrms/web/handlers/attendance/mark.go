package attendance

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"hrmslite.com/hrms/hrms/core"
	web "hrmslite.com/hrms/web/common"
)

func (ep *Endpoint) Mark(c *gin.Context) {
	var input core.MarkAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ep.base.Fail(c, "Error marking attendance", web.BindingError(err))
		return
	}

	record, err := ep.base.Ledger.Mark(c.Request.Context(), input)
	if err != nil {
		ep.base.Fail(c, "Error marking attendance", err)
		return
	}
	c.JSON(http.StatusCreated, web.NewMessageResponse(MsgMarked, record))
}
