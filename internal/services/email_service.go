package services

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/loydmilligan/leadoff/internal/models"
)

type EmailService interface {
	SendFollowUpDigest(to string, overdue, today []*models.Lead) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendFollowUpDigest(to string, overdue, today []*models.Lead) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Follow-up digest: %d overdue, %d due today", len(overdue), len(today)))

	var b strings.Builder
	b.WriteString("<h2>Daily follow-up digest</h2>")

	b.WriteString(fmt.Sprintf("<h3>Overdue (%d)</h3>", len(overdue)))
	writeLeadList(&b, overdue)

	b.WriteString(fmt.Sprintf("<h3>Due today (%d)</h3>", len(today)))
	writeLeadList(&b, today)

	m.SetBody("text/html", b.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send follow-up digest: %w", err)
	}
	return nil
}

func writeLeadList(b *strings.Builder, leads []*models.Lead) {
	if len(leads) == 0 {
		b.WriteString("<p>Nothing here.</p>")
		return
	}
	b.WriteString("<ul>")
	for _, l := range leads {
		b.WriteString(fmt.Sprintf("<li><strong>%s</strong> (%s): %s", l.CompanyName, l.ContactName, l.CurrentStage))
		if l.NextFollowUpDate != nil {
			b.WriteString(fmt.Sprintf(", follow up by %s", l.NextFollowUpDate.Format("Jan 2 15:04")))
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
}
