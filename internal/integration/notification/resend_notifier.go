package notification

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/subtracker/backend/internal/domain/entity"
)

// ResendNotifier implements adapter.ReminderNotifier by sending reminder
// emails via Resend.
type ResendNotifier struct {
	client    *resend.Client
	fromName  string
	fromEmail string
	recipient string
}

// NewResendNotifier creates a new Resend-backed reminder notifier.
func NewResendNotifier(apiKey, fromName, fromEmail, recipient string) *ResendNotifier {
	return &ResendNotifier{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		recipient: recipient,
	}
}

// Notify sends a reminder email for a single decision.
func (n *ResendNotifier) Notify(ctx context.Context, decision *entity.ReminderDecision) error {
	subject := fmt.Sprintf("%s renews in %d days", decision.Name, decision.ReminderDays)
	if decision.ReminderDays == 0 {
		subject = fmt.Sprintf("%s renews today", decision.Name)
	} else if decision.ReminderDays == 1 {
		subject = fmt.Sprintf("%s renews tomorrow", decision.Name)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", n.fromName, n.fromEmail),
		To:      []string{n.recipient},
		Subject: subject,
		Html:    renderReminderHTML(decision),
		Text:    subject + ". Review it in SubTracker before you get charged.",
	}

	if _, err := n.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}
	return nil
}

// renderReminderHTML builds the small reminder email body.
func renderReminderHTML(decision *entity.ReminderDecision) string {
	return fmt.Sprintf(`<div style="font-family:sans-serif">
<img src=%q alt="" width="48" height="48" style="border-radius:8px"/>
<h2>%s</h2>
<p>This subscription renews in <strong>%d day(s)</strong>.
Review it in SubTracker before you get charged.</p>
</div>`,
		decision.IconURL, decision.Name, decision.ReminderDays)
}
