package common

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"hrmslite.com/hrms/hrms/core"
	web "hrmslite.com/hrms/web/common"
)

type Handler struct {
	Directory *core.Directory
	Ledger    *core.Ledger
	Notifier  core.Notifier
}

func NewHandler(store core.Store, notifier core.Notifier, loc *time.Location) *Handler {
	if notifier == nil {
		notifier = core.NopNotifier{}
	}
	return &Handler{
		Directory: core.NewDirectory(store, notifier),
		Ledger:    core.NewLedger(store, loc),
		Notifier:  notifier,
	}
}

// Fail writes err as an envelope. operation is the message shown for
// unexpected errors, e.g. "Error creating employee".
func (h *Handler) Fail(c *gin.Context, operation string, err error) {
	var e *core.Error
	if !errors.As(err, &e) {
		e = core.Unexpected(operation, err)
	}

	switch e.Kind {
	case core.KindNotFound:
		c.JSON(http.StatusNotFound, web.NewErrorResponse(e.Message))
	case core.KindConflict:
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(e.Message))
	case core.KindInvalidInput:
		c.JSON(http.StatusBadRequest, web.NewFailureResponse(e.Message, "validation failed: "+e.Message))
	default:
		fmt.Printf("[ERROR] [%s] %s: %v\n", c.GetString("requestId"), operation, err)
		// the request context may already be cancelled
		ctx := context.WithoutCancel(c.Request.Context())
		if nerr := h.Notifier.Failure(ctx, operation, err); nerr != nil {
			fmt.Printf("[ERROR] notify failure: %v\n", nerr)
		}
		c.JSON(http.StatusInternalServerError, web.NewFailureResponse(operation, err.Error()))
	}
}
