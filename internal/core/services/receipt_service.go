package services

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	"github.com/computeralex/seventh-traditioner/internal/core/domain"
	portssvc "github.com/computeralex/seventh-traditioner/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

//go:embed receipt_template.html
var receiptTemplateHTML string

var receiptTemplate = template.Must(template.New("receipt").Parse(receiptTemplateHTML))

// MailSender delivers one HTML message.
type MailSender interface {
	Send(to, subject, htmlBody string) error
}

type receiptData struct {
	FellowshipName  string
	MemberName      string
	FormattedAmount string
	GroupName       string
	Date            string
	TransactionID   string
	CustomNotes     string
}

// ReceiptService renders and sends contribution receipt emails.
type ReceiptService struct {
	mailer         MailSender
	currency       portssvc.CurrencySvcFacade
	fellowshipName string
	subject        string
}

// NewReceiptService creates a ReceiptService. A nil mailer disables sending;
// SendReceipt then reports an error the caller logs and moves past.
func NewReceiptService(mailer MailSender, currency portssvc.CurrencySvcFacade, fellowshipName, subject string) *ReceiptService {
	if subject == "" {
		subject = "Contribution Receipt"
	}
	return &ReceiptService{
		mailer:         mailer,
		currency:       currency,
		fellowshipName: fellowshipName,
		subject:        subject,
	}
}

// SendReceipt emails the HTML receipt for a stored contribution.
func (s *ReceiptService) SendReceipt(ctx context.Context, contribution *domain.Contribution) error {
	if s.mailer == nil {
		return fmt.Errorf("mail delivery is not configured")
	}
	if contribution.MemberEmail == "" {
		return fmt.Errorf("contribution %d has no member email", contribution.ID)
	}

	body, err := s.render(receiptData{
		FellowshipName:  s.fellowshipName,
		MemberName:      contribution.MemberName,
		FormattedAmount: s.currency.FormatAmount(contribution.Amount, contribution.Currency),
		GroupName:       contribution.GroupName,
		Date:            contribution.ContributionDate.Format("January 2, 2006 3:04 PM"),
		TransactionID:   contribution.TransactionID,
		CustomNotes:     contribution.CustomNotes,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("%s - %s", s.subject, s.fellowshipName)
	if err := s.mailer.Send(contribution.MemberEmail, subject, body); err != nil {
		return fmt.Errorf("failed to send receipt for contribution %d: %w", contribution.ID, err)
	}
	return nil
}

// SendTestReceipt emails a sample receipt so administrators can verify the
// SMTP setup without making a payment.
func (s *ReceiptService) SendTestReceipt(ctx context.Context, email string) error {
	sample := &domain.Contribution{
		ID:               0,
		TransactionID:    "TEST-TRANSACTION-ID",
		MemberName:       "Test Member",
		MemberEmail:      email,
		GroupName:        "Test Group",
		Amount:           decimal.NewFromInt(25),
		Currency:         "USD",
		ContributionDate: time.Now(),
		CustomNotes:      "This is a test receipt.",
	}
	return s.SendReceipt(ctx, sample)
}

func (s *ReceiptService) render(data receiptData) (string, error) {
	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render receipt template: %w", err)
	}
	return buf.String(), nil
}
