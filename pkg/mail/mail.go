package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

//go:generate go run go.uber.org/mock/mockgen -source=mail.go -destination=mock/mail_mock.go -package=mock github.com/savioruz/culturepay/pkg/mail Service

//go:embed template/*.html
var templates embed.FS

type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// DonationReceiptData represents the data for the donation receipt email
type DonationReceiptData struct {
	DonorName        string
	EventName        string
	TransactionID    string
	Amount           string
	PaymentMethod    string
	PaymentDate      string
	ValidUntil       string
	Summary          string
	OrganisationName string
}

type Service interface {
	SendDonationReceipt(to string, data DonationReceiptData) error
}

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type service struct {
	config          Config
	sender          Sender
	receiptTemplate *template.Template
}

func New(config Config) (Service, error) {
	return NewWithSender(config, gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUsername, config.SMTPPassword))
}

func NewWithSender(config Config, sender Sender) (Service, error) {
	receiptTemplate, err := template.ParseFS(templates, "template/donation_receipt.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse donation receipt template: %w", err)
	}

	return &service{
		config:          config,
		sender:          sender,
		receiptTemplate: receiptTemplate,
	}, nil
}

func (s *service) SendDonationReceipt(to string, data DonationReceiptData) error {
	subject := fmt.Sprintf("Donation Receipt - %s", data.TransactionID)

	if data.OrganisationName == "" {
		data.OrganisationName = s.config.FromName
	}

	var body bytes.Buffer
	if err := s.receiptTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute donation receipt template: %w", err)
	}

	return s.sendEmail(to, subject, body.String())
}

func (s *service) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromEmail, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return s.sender.DialAndSend(m)
}
