package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	common "hrmslite.com/hrms/hrms/web/common"
	web "hrmslite.com/hrms/web/common"
)

func Register(r *gin.RouterGroup, h *common.Handler) {
	r.GET("/dashboard", func(c *gin.Context) {
		stats, err := h.Ledger.Dashboard(c.Request.Context())
		if err != nil {
			h.Fail(c, "Error fetching dashboard", err)
			return
		}
		c.JSON(http.StatusOK, web.NewSuccessResponse(stats))
	})
}
