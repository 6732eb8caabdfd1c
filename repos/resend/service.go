package resend

import (
	"context"
	"fmt"
	"log"

	resend "github.com/resend/resend-go/v2"
)

// Service sends back-office notification mail through Resend. A missing
// API key turns every send into a logged no-op so local runs never need
// mail credentials.
type Service struct {
	resendClient *resend.Client
	notifyEmail  string
	enabled      bool
}

// NewService creates a new mail service. notifyEmail is the back-office
// address that receives lead and upgrade notifications.
func NewService(apiKey, notifyEmail string) *Service {
	return &Service{
		resendClient: resend.NewClient(apiKey),
		notifyEmail:  notifyEmail,
		enabled:      apiKey != "" && notifyEmail != "",
	}
}

// SendLeadNotification mails the back office about a freshly captured
// sales lead.
func (s *Service) SendLeadNotification(ctx context.Context, lead LeadRequest) error {
	if !s.enabled {
		log.Printf("Mail disabled, skipping lead notification for %s\n", lead.Email)
		return nil
	}

	body := leadEmailTemplate(lead)
	params := &resend.SendEmailRequest{
		From:    "onboarding@resend.dev",
		To:      []string{s.notifyEmail},
		Subject: fmt.Sprintf("New lead: %s", lead.Name),
		Html:    body,
	}

	_, err := s.resendClient.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send lead notification: %v\n", err)
		return err
	}
	return nil
}

// SendTierUpgradeNotification mails the back office when an admin moves a
// user onto a paid tier.
func (s *Service) SendTierUpgradeNotification(ctx context.Context, email, tier string) error {
	if !s.enabled {
		log.Printf("Mail disabled, skipping upgrade notification for %s\n", email)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    "onboarding@resend.dev",
		To:      []string{s.notifyEmail},
		Subject: "Tier upgrade",
		Html:    fmt.Sprintf("<p>User <b>%s</b> was upgraded to <b>%s</b>.</p>", email, tier),
	}

	_, err := s.resendClient.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send upgrade notification: %v\n", err)
		return err
	}
	return nil
}

func leadEmailTemplate(lead LeadRequest) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body>
    <h2>New lead</h2>
    <p><b>Name:</b> %s</p>
    <p><b>Email:</b> %s</p>
    <p><b>Company:</b> %s</p>
    <p>%s</p>
</body>
</html>`, lead.Name, lead.Email, lead.Company, lead.Message)
}
