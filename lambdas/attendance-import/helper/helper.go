package helper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"hrmslite.com/hrms/hrms/core"
)

type ObjectReader interface {
	ReadFile(ctx context.Context, key string, out io.Writer) error
}

type Poster interface {
	Info(ctx context.Context, message string) error
	Error(ctx context.Context, message string) error
}

// Importer marks attendance from CSV files dropped into S3.
type Importer struct {
	Open   func(ctx context.Context, bucket string) (ObjectReader, error)
	Ledger *core.Ledger
	Slack  Poster
}

func (im *Importer) HandleEvent(ctx context.Context, event events.S3Event) error {
	var errs []error
	for _, record := range event.Records {
		bucket := record.S3.Bucket.Name
		key, err := url.QueryUnescape(record.S3.Object.Key)
		if err != nil {
			key = record.S3.Object.Key
		}
		if !strings.HasSuffix(strings.ToLower(key), ".csv") {
			fmt.Printf("[INFO] skip %s/%s: not a csv file\n", bucket, key)
			continue
		}

		result, err := im.importObject(ctx, bucket, key)
		if err != nil {
			fmt.Printf("[ERROR] import %s/%s: %v\n", bucket, key, err)
			im.post(ctx, true, fmt.Sprintf("Attendance import of %s failed: %v", key, err))
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}

		fmt.Printf("[INFO] import %s/%s: %d marked, %d failed\n", bucket, key, result.Marked, result.Failed)
		im.post(ctx, false, FormatSummary(key, result))
	}
	return errors.Join(errs...)
}

func (im *Importer) importObject(ctx context.Context, bucket, key string) (*core.ImportResult, error) {
	reader, err := im.Open(ctx, bucket)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := reader.ReadFile(ctx, key, &buf); err != nil {
		return nil, err
	}
	return im.Ledger.Import(ctx, &buf)
}

// post is a no-op when no Slack poster is configured.
func (im *Importer) post(ctx context.Context, failure bool, message string) {
	if im.Slack == nil {
		return
	}
	var err error
	if failure {
		err = im.Slack.Error(ctx, message)
	} else {
		err = im.Slack.Info(ctx, message)
	}
	if err != nil {
		fmt.Printf("[ERROR] %v\n", err)
	}
}

// FormatSummary lists the totals and every row that was not marked.
func FormatSummary(key string, result *core.ImportResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Attendance import of %s: %d marked, %d failed", key, result.Marked, result.Failed)
	for _, row := range result.Rows {
		if row.Outcome == core.OutcomeMarked {
			continue
		}
		fmt.Fprintf(&sb, "\nrow %d %s %s: %s", row.Row, row.EmployeeID, row.Date, row.Message)
	}
	return sb.String()
}
