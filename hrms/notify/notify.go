package notify

import (
	"context"
	"errors"
	"fmt"

	"hrmslite.com/hrms/config"
	"hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/hrms/model"
	"hrmslite.com/hrms/infrastructure/communication"
	"hrmslite.com/hrms/infrastructure/email"
)

// Poster posts plain text to an info or error channel.
type Poster interface {
	Info(ctx context.Context, message string) error
	Error(ctx context.Context, message string) error
}

// Mailer sends a plain text email.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

type Slack struct {
	poster Poster
}

func NewSlack(poster Poster) *Slack {
	return &Slack{poster: poster}
}

func (s *Slack) EmployeeCreated(ctx context.Context, emp model.Employee) error {
	return s.poster.Info(ctx, fmt.Sprintf("New employee %s (%s), %s, %s", emp.FullName, emp.EmployeeID, emp.Department, emp.Email))
}

func (s *Slack) EmployeeDeleted(ctx context.Context, emp model.Employee, attendanceRemoved int64) error {
	return s.poster.Info(ctx, fmt.Sprintf("Employee %s (%s) deleted with %d attendance records", emp.FullName, emp.EmployeeID, attendanceRemoved))
}

func (s *Slack) Failure(ctx context.Context, operation string, err error) error {
	return s.poster.Error(ctx, fmt.Sprintf("%s failed: %v", operation, err))
}

// Email tells HR about directory changes. Failures are not emailed.
type Email struct {
	mailer Mailer
	to     []string
}

func NewEmail(mailer Mailer, to ...string) *Email {
	return &Email{mailer: mailer, to: to}
}

func (e *Email) EmployeeCreated(ctx context.Context, emp model.Employee) error {
	body := fmt.Sprintf("Employee ID: %s\nName: %s\nEmail: %s\nDepartment: %s\n",
		emp.EmployeeID, emp.FullName, emp.Email, emp.Department)
	return e.mailer.Send(ctx, e.to, "New employee: "+emp.FullName, body)
}

func (e *Email) EmployeeDeleted(ctx context.Context, emp model.Employee, attendanceRemoved int64) error {
	body := fmt.Sprintf("Employee ID: %s\nName: %s\nAttendance records removed: %d\n",
		emp.EmployeeID, emp.FullName, attendanceRemoved)
	return e.mailer.Send(ctx, e.to, "Employee removed: "+emp.FullName, body)
}

func (e *Email) Failure(context.Context, string, error) error {
	return nil
}

// Multi delivers to every notifier and joins their errors.
type Multi []core.Notifier

func (m Multi) EmployeeCreated(ctx context.Context, emp model.Employee) error {
	var errs []error
	for _, n := range m {
		errs = append(errs, n.EmployeeCreated(ctx, emp))
	}
	return errors.Join(errs...)
}

func (m Multi) EmployeeDeleted(ctx context.Context, emp model.Employee, attendanceRemoved int64) error {
	var errs []error
	for _, n := range m {
		errs = append(errs, n.EmployeeDeleted(ctx, emp, attendanceRemoved))
	}
	return errors.Join(errs...)
}

func (m Multi) Failure(ctx context.Context, operation string, err error) error {
	var errs []error
	for _, n := range m {
		errs = append(errs, n.Failure(ctx, operation, err))
	}
	return errors.Join(errs...)
}

// FromConfig wires Slack when a bot token is set and SES when both a sender
// and an HR address are set.
func FromConfig(ctx context.Context, cfg *config.Config) (core.Notifier, error) {
	var notifiers Multi

	if cfg.Slack.Token != "" {
		slack := communication.NewSlack(cfg.Slack.Token, communication.SlackOption{
			InfoChannelID:  cfg.Slack.InfoChannelID,
			ErrorChannelID: cfg.Slack.ErrorChannelID,
		})
		notifiers = append(notifiers, NewSlack(slack))
		fmt.Printf("[INFO] slack notifications enabled\n")
	}

	if cfg.SESFrom != "" && cfg.HREmail != "" {
		sender, err := email.Connect(ctx, cfg.SESFrom)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, NewEmail(sender, cfg.HREmail))
		fmt.Printf("[INFO] email notifications to %s enabled\n", cfg.HREmail)
	}

	switch len(notifiers) {
	case 0:
		return core.NopNotifier{}, nil
	case 1:
		return notifiers[0], nil
	}
	return notifiers, nil
}

var (
	_ core.Notifier = (*Slack)(nil)
	_ core.Notifier = (*Email)(nil)
	_ core.Notifier = Multi(nil)
)
