package email

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Mailer sends the two one-way notifications the system produces
type Mailer interface {
	SendComplaintConfirmation(to string, complaintID int64, complaintType, description, priority, verificationCode string) error
	SendPasswordResetCode(to, code string) error
}

// SMTPConfig holds the SMTP server configuration
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
}

// LoadSMTPConfigFromEnv loads SMTP configuration from environment variables
func LoadSMTPConfigFromEnv() (*SMTPConfig, error) {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_SENDER_EMAIL")

	if host == "" || portStr == "" || from == "" {
		return nil, fmt.Errorf("SMTP_HOST, SMTP_PORT, and SMTP_SENDER_EMAIL must be set")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	return &SMTPConfig{
		Host:        host,
		Port:        port,
		Username:    username, // Username/password can be empty for open relays
		Password:    password,
		FromAddress: from,
	}, nil
}

// SMTPMailer sends mail over SMTP using gomail
type SMTPMailer struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(config SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

// SendComplaintConfirmation mails the submitter their complaint summary and
// the verification code the assigned worker will need to close it
func (m *SMTPMailer) SendComplaintConfirmation(to string, complaintID int64, complaintType, description, priority, verificationCode string) error {
	subject := "Complaint Registered - Verification Code"
	body := fmt.Sprintf(`Dear User,

Your complaint has been registered successfully.
Complaint ID: %d
Type: %s
Description: %s
Priority: %s
Verification Code: %s

Please share this code only with the assigned worker once the issue is resolved.

Thank you.
`, complaintID, complaintType, description, priority, verificationCode)

	return m.send(to, subject, body)
}

// SendPasswordResetCode mails a password reset verification code
func (m *SMTPMailer) SendPasswordResetCode(to, code string) error {
	subject := "Password Reset Verification Code"
	body := fmt.Sprintf("Your verification code is: %s\n", code)
	return m.send(to, subject, body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.FromAddress)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
