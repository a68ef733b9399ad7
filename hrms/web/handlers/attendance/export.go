package attendance

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"hrmslite.com/hrms/hrms/report"
)

func (ep *Endpoint) Export(c *gin.Context) {
	buf, err := report.Generate(c.Request.Context(), ep.base.Directory, ep.base.Ledger, c.Query("employeeId"))
	if err != nil {
		ep.base.Fail(c, "Error exporting attendance", err)
		return
	}

	filename := report.Filename(time.Now(), ep.base.Ledger.Location())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, report.ContentType, buf.Bytes())
}
