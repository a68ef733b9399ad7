package attendance

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"hrmslite.com/hrms/hrms/core"
	web "hrmslite.com/hrms/web/common"
)

// maxImportSize bounds the multipart body (5 MB).
const maxImportSize = 5 << 20

func (ep *Endpoint) Import(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize)
	header, err := c.FormFile("file")
	if err != nil {
		ep.base.Fail(c, "Error importing attendance", core.InvalidInput("Field 'file' is required"))
		return
	}

	file, err := header.Open()
	if err != nil {
		ep.base.Fail(c, "Error importing attendance", err)
		return
	}
	defer file.Close()

	result, err := ep.base.Ledger.Import(c.Request.Context(), file)
	if err != nil {
		ep.base.Fail(c, "Error importing attendance", err)
		return
	}

	fmt.Printf("[INFO] imported %s: %d marked, %d failed\n", header.Filename, result.Marked, result.Failed)
	message := fmt.Sprintf("Imported %d of %d rows", result.Marked, len(result.Rows))
	c.JSON(http.StatusOK, web.NewMessageResponse(message, result))
}
