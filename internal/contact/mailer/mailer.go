package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v3"
	"github.com/sirupsen/logrus"

	"github.com/praisepoint/site-api/internal/contact/model"
	"github.com/praisepoint/site-api/internal/system/config"
	"github.com/praisepoint/site-api/internal/system/utils"
)

// Notifier sends the internal notification email for a contact submission.
// The service layer depends on this interface, not on the Resend client.
type Notifier interface {
	Notify(ctx context.Context, submission *model.ContactSubmission) error
}

// resendNotifier implements Notifier on the Resend transactional mail API
type resendNotifier struct {
	client     *resend.Client
	from       string
	recipients []string
	siteName   string
	logger     *logrus.Logger
}

// NewResendNotifier creates a Notifier backed by Resend. When the relay is
// not configured the returned Notifier is a silent no-op.
func NewResendNotifier(cfg *config.MailConfig, siteName string, logger *logrus.Logger) Notifier {
	if !cfg.IsConfigured() {
		return &noopNotifier{logger: logger}
	}
	return &resendNotifier{
		client:     resend.NewClient(cfg.ResendAPIKey),
		from:       cfg.FromAddress,
		recipients: cfg.Recipients,
		siteName:   siteName,
		logger:     logger,
	}
}

// Notify sends an HTML notification built from a fixed template to the
// configured recipient set.
func (n *resendNotifier) Notify(ctx context.Context, submission *model.ContactSubmission) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", n.siteName, n.from),
		To:      n.recipients,
		Subject: fmt.Sprintf("New contact request from %s (%s)", submission.Name, submission.Company),
		Html:    renderHTML(submission),
		ReplyTo: submission.Email,
	}

	_, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}

	n.logger.WithFields(logrus.Fields{
		"recipients": len(n.recipients),
		"company":    submission.Company,
	}).Debug("Contact notification sent")

	return nil
}

type noopNotifier struct {
	logger *logrus.Logger
}

func (n *noopNotifier) Notify(ctx context.Context, submission *model.ContactSubmission) error {
	n.logger.Debug("Mail relay not configured, skipping contact notification")
	return nil
}

func renderHTML(s *model.ContactSubmission) string {
	rows := []struct{ label, value string }{
		{"Name", s.Name},
		{"Company", s.Company},
		{"Email", s.Email},
		{"Company size", s.Employees},
		{"Message", s.Message},
	}
	for name, value := range s.UTMFields() {
		rows = append(rows, struct{ label, value string }{name, value})
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:24px;background-color:#f8fafc;font-family:Arial,Helvetica,sans-serif;">
  <table width="560" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:32px;">
    <tr><td><h2 style="color:#0f172a;font-size:18px;margin:0 0 16px 0;">New contact request</h2></td></tr>
`)
	for _, row := range rows {
		b.WriteString(fmt.Sprintf(`    <tr><td style="padding:4px 0;"><strong style="color:#334155;">%s:</strong> <span style="color:#475569;">%s</span></td></tr>
`, utils.SanitizeString(row.label), utils.SanitizeString(row.value)))
	}
	b.WriteString(`  </table>
</body>
</html>`)

	return b.String()
}
