package libs

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Mailer sends dashboard notification mail through the configured SMTP relay.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer() (*Mailer, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, errors.New("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	return &Mailer{
		dialer: gomail.NewDialer(smtpHost, port, smtpUser, smtpPass),
		from:   os.Getenv("SMTP_FROM"),
	}, nil
}

// SendPasswordResetNotice tells an admin that a reset was requested for their
// account.
func (m *Mailer) SendPasswordResetNotice(toEmail string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Password Reset Requested - Gemstone Admin")

	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Password reset requested</h2>
  <p>A password reset was requested for %s on the Gemstone admin dashboard.</p>
  <p>If this was not you, no action is needed; the request expires on its own.</p>
</body>
</html>`, toEmail)

	msg.SetBody("text/html", body)
	return m.dialer.DialAndSend(msg)
}
