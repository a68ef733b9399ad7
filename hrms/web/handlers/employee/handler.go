package employee

import (
	"github.com/gin-gonic/gin"
	common "hrmslite.com/hrms/hrms/web/common"
)

const (
	MsgCreated = "Employee created successfully"
	MsgDeleted = "Employee and associated attendance records deleted successfully"
)

type Endpoint struct {
	base *common.Handler
}

func Register(r *gin.RouterGroup, h *common.Handler) {
	endpoint := &Endpoint{base: h}
	r.GET("/employees", endpoint.List)
	r.GET("/employees/:id", endpoint.Get)
	r.POST("/employees", endpoint.Create)
	r.DELETE("/employees/:id", endpoint.Delete)
}
