package helper

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/hrms/store/memstore"
)

type files map[string]string

func (f files) ReadFile(ctx context.Context, key string, out io.Writer) error {
	content, ok := f[key]
	if !ok {
		return errors.New("NoSuchKey")
	}
	_, err := io.WriteString(out, content)
	return err
}

type poster struct {
	info, errs []string
}

func (p *poster) Info(ctx context.Context, message string) error {
	p.info = append(p.info, message)
	return nil
}

func (p *poster) Error(ctx context.Context, message string) error {
	p.errs = append(p.errs, message)
	return nil
}

func s3Event(bucket string, keys ...string) events.S3Event {
	var event events.S3Event
	for _, key := range keys {
		var record events.S3EventRecord
		record.S3.Bucket.Name = bucket
		record.S3.Object.Key = key
		event.Records = append(event.Records, record)
	}
	return event
}

func newImporter(t *testing.T, objects files) (*Importer, *poster, *core.Ledger) {
	ctx := context.Background()
	s := memstore.New()
	_, err := core.NewDirectory(s, nil).Create(ctx, core.CreateEmployeeInput{
		EmployeeID: "EMP001", FullName: "Alice Smith", Email: "alice@example.com", Department: "Engineering",
	})
	require.NoError(t, err)

	ledger := core.NewLedger(s, time.UTC)
	p := &poster{}
	im := &Importer{
		Open: func(ctx context.Context, bucket string) (ObjectReader, error) {
			assert.Equal(t, "hrms-imports", bucket)
			return objects, nil
		},
		Ledger: ledger,
		Slack:  p,
	}
	return im, p, ledger
}

func TestHandleEvent(t *testing.T) {
	im, p, ledger := newImporter(t, files{
		"january week 2.csv": "employeeId,date,status\nEMP001,2024-01-10,Present\nEMP404,2024-01-10,Absent\n",
	})

	err := im.HandleEvent(context.Background(), s3Event("hrms-imports", "january+week+2.csv", "notes.txt"))
	require.NoError(t, err)

	records, err := ledger.List(context.Background(), "EMP001")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	require.Len(t, p.info, 1)
	assert.Equal(t, "Attendance import of january week 2.csv: 1 marked, 1 failed\nrow 2 EMP404 2024-01-10: Employee not found", p.info[0])
	assert.Empty(t, p.errs)
}

func TestHandleEventFailures(t *testing.T) {
	im, p, _ := newImporter(t, files{
		"bad.csv": "EMP001,2024-01-10\n",
	})

	err := im.HandleEvent(context.Background(), s3Event("hrms-imports", "bad.csv", "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.csv")
	assert.Contains(t, err.Error(), "missing.csv")

	require.Len(t, p.errs, 2)
	assert.True(t, strings.HasPrefix(p.errs[0], "Attendance import of bad.csv failed"))
	assert.Empty(t, p.info)
}

func TestHandleEventWithoutSlack(t *testing.T) {
	im, _, ledger := newImporter(t, files{
		"a.csv": "employeeId,date,status\nEMP001,2024-01-10,Present\n",
	})
	im.Slack = nil

	require.NotPanics(t, func() {
		err := im.HandleEvent(context.Background(), s3Event("hrms-imports", "a.csv", "missing.csv"))
		assert.ErrorContains(t, err, "missing.csv")
	})

	records, err := ledger.List(context.Background(), "EMP001")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
