package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"hrmslite.com/hrms/config"
	"hrmslite.com/hrms/hrms/notify"
	"hrmslite.com/hrms/hrms/store"
	common "hrmslite.com/hrms/hrms/web/common"
	"hrmslite.com/hrms/hrms/web/routes"
	"hrmslite.com/hrms/web/middlewares"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	fmt.Printf("using STORE: %s\n", cfg.Store)
	fmt.Printf("using TIMEZONE: %s\n", cfg.Timezone)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	s, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close(context.Background())

	if err := store.Migrate(ctx, s); err != nil {
		log.Fatalf("Failed to migrate store: %v", err)
	}

	notifier, err := notify.FromConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up notifications: %v", err)
	}

	h := common.NewHandler(s, notifier, cfg.Location())
	router := routes.New(s, h, routes.Options{RequestTimeout: cfg.RequestTimeout, AccessLog: true})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           middlewares.CORS(cfg.AllowedOrigins, router),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.RequestTimeout + 5*time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
	}

	go func() {
		fmt.Printf("[INFO] listening on %s\n", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Printf("[INFO] shutting down\n")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Printf("[ERROR] shutdown: %v\n", err)
	}
}
