package email

import (
	"fmt"
	"net/smtp"
	"os"
)

type Service struct {
	host     string
	port     string
	user     string
	password string
	from     string
}

func NewService() *Service {
	return &Service{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		user:     os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
	}
}

// Configured reports whether SMTP settings are present. Invites are
// skipped silently when they are not.
func (s *Service) Configured() bool {
	return s.host != "" && s.port != "" && s.from != ""
}

// SendSubAdminInvite tells a newly provisioned sub-admin that their login
// exists. The password is never mailed; the main admin hands it over
// out of band.
func (s *Service) SendSubAdminInvite(to string) error {
	if !s.Configured() {
		return nil
	}

	domain := os.Getenv("DOMAIN")
	if domain == "" {
		domain = "http://localhost:8080"
	}

	subject := "Your MILEDESIGNS dashboard access"
	body := fmt.Sprintf(`Hello,

An administrator account has been created for you on the MILEDESIGNS dashboard.

Sign in at %s/admin with this email address and the password your
administrator shared with you.

If you were not expecting this, you can ignore this email.

---
MILEDESIGNS Design & Build
`, domain)

	message := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", s.from, to, subject, body)

	auth := smtp.PlainAuth("", s.user, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("sending invite email: %v", err)
	}
	return nil
}
