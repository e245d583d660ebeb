package services

import (
	"fmt"
	"strings"

	"github.com/overtone-studio/site-backend/config"
	"github.com/overtone-studio/site-backend/models"
)

// NotifyNewInquiry emails the studio about a freshly submitted contact
// inquiry. The inquiry is already persisted when this runs; a notification
// failure is logged by the caller, never surfaced to the visitor.
//
// Recipients come from INQUIRY_NOTIFY_EMAILS (comma separated). When unset
// the notification is skipped silently.
func NotifyNewInquiry(cfg map[string]string, inquiry models.ContactInquiry) error {
	raw := config.GetString(cfg, "INQUIRY_NOTIFY_EMAILS", "")
	if raw == "" {
		return nil
	}

	recipients := make([]string, 0)
	for _, addr := range strings.Split(raw, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			recipients = append(recipients, addr)
		}
	}
	if len(recipients) == 0 {
		return nil
	}

	subject := fmt.Sprintf("New inquiry from %s", inquiry.Name)
	if inquiry.Subject != nil && *inquiry.Subject != "" {
		subject = fmt.Sprintf("New inquiry: %s", *inquiry.Subject)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Name: %s\n", inquiry.Name)
	fmt.Fprintf(&body, "Email: %s\n", inquiry.Email)
	if inquiry.Budget != nil && *inquiry.Budget != "" {
		fmt.Fprintf(&body, "Budget: %s\n", *inquiry.Budget)
	}
	fmt.Fprintf(&body, "\n%s\n", inquiry.Message)

	return SendEmail(cfg, subject, body.String(), recipients)
}
