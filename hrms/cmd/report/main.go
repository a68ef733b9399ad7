package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"time"

	"hrmslite.com/hrms/config"
	"hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/hrms/report"
	"hrmslite.com/hrms/hrms/store"
	"hrmslite.com/hrms/infrastructure/filesystem"
)

// Writes the attendance workbook to a local file, or to REPORT_BUCKET when
// -s3 is set.
func main() {
	employeeID := flag.String("employee", "", "only this employeeId")
	out := flag.String("out", "", "output file (default attendance-YYYY-MM-DD.xlsx)")
	toS3 := flag.Bool("s3", false, "upload to REPORT_BUCKET instead of writing a file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	s, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer s.Close(ctx)

	loc := cfg.Location()
	buf, err := report.Generate(ctx, core.NewDirectory(s, nil), core.NewLedger(s, loc), *employeeID)
	if err != nil {
		log.Fatalf("failed to generate report: %v", err)
	}

	name := *out
	if name == "" {
		name = report.Filename(time.Now(), loc)
	}

	if *toS3 {
		if cfg.ReportBucket == "" {
			log.Fatalf("REPORT_BUCKET is not set")
		}
		bucket, err := filesystem.Connect(ctx, cfg.ReportBucket)
		if err != nil {
			log.Fatalf("failed to connect to S3: %v", err)
		}
		key := path.Join("reports", name)
		if err := bucket.UploadFile(ctx, key, report.ContentType, buf); err != nil {
			log.Fatalf("failed to upload report: %v", err)
		}
		fmt.Printf("[INFO] uploaded s3://%s/%s\n", bucket.Name(), key)
		return
	}

	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		log.Fatalf("failed to write report: %v", err)
	}
	fmt.Printf("[INFO] wrote %s\n", name)
}
