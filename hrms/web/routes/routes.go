package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"hrmslite.com/hrms/hrms/core"
	common "hrmslite.com/hrms/hrms/web/common"
	"hrmslite.com/hrms/hrms/web/handlers/attendance"
	"hrmslite.com/hrms/hrms/web/handlers/dashboard"
	"hrmslite.com/hrms/hrms/web/handlers/employee"
	web "hrmslite.com/hrms/web/common"
	"hrmslite.com/hrms/web/middlewares"
)

type Options struct {
	RequestTimeout time.Duration
	// AccessLog enables gin's request logger.
	AccessLog bool
}

func New(store core.Store, h *common.Handler, opts Options) *gin.Engine {
	r := gin.New()
	if opts.AccessLog {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery(), middlewares.RequestID())
	if opts.RequestTimeout > 0 {
		r.Use(middlewares.Timeout(opts.RequestTimeout))
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.GET("/health", func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, web.NewFailureResponse("Store unavailable", err.Error()))
			return
		}
		c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	api := r.Group("/api")
	{
		employee.Register(api, h)
		attendance.Register(api, h)
		dashboard.Register(api, h)
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, web.NewErrorResponse("Route not found"))
			return
		}
		c.Status(http.StatusNotFound)
	})

	return r
}
