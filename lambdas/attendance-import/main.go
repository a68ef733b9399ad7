package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"hrmslite.com/hrms/config"
	"hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/hrms/store"
	"hrmslite.com/hrms/infrastructure/communication"
	"hrmslite.com/hrms/infrastructure/filesystem"
	"hrmslite.com/hrms/lambdas/attendance-import/helper"
)

func newImporter(ctx context.Context) (*helper.Importer, func(), error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	s, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	im := &helper.Importer{
		Open: func(ctx context.Context, bucket string) (helper.ObjectReader, error) {
			b, err := filesystem.Connect(ctx, bucket)
			if err != nil {
				return nil, err
			}
			return b, nil
		},
		Ledger: core.NewLedger(s, cfg.Location()),
	}
	if cfg.Slack.Token != "" {
		im.Slack = communication.NewSlack(cfg.Slack.Token, communication.SlackOption{
			InfoChannelID:  cfg.Slack.InfoChannelID,
			ErrorChannelID: cfg.Slack.ErrorChannelID,
		})
	}
	return im, func() { _ = s.Close(context.Background()) }, nil
}

func main() {
	ctx := context.Background()
	im, closeStore, err := newImporter(ctx)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer closeStore()

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(im.HandleEvent)
		return
	}

	// local run: go run ./lambdas/attendance-import <bucket> <key>
	if len(os.Args) != 3 {
		log.Fatalf("usage: %s <bucket> <key>", os.Args[0])
	}
	var event events.S3Event
	var record events.S3EventRecord
	record.S3.Bucket.Name = os.Args[1]
	record.S3.Object.Key = os.Args[2]
	event.Records = append(event.Records, record)

	if err := im.HandleEvent(ctx, event); err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}
}
