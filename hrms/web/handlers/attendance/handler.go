package attendance

import (
	"github.com/gin-gonic/gin"
	common "hrmslite.com/hrms/hrms/web/common"
)

const MsgMarked = "Attendance marked successfully"

type Endpoint struct {
	base *common.Handler
}

func Register(r *gin.RouterGroup, h *common.Handler) {
	endpoint := &Endpoint{base: h}
	r.GET("/attendance", endpoint.List)
	r.POST("/attendance", endpoint.Mark)
	r.GET("/attendance/summary/:employeeId", endpoint.Summary)
	r.GET("/attendance/export", endpoint.Export)
	r.POST("/attendance/import", endpoint.Import)
}
