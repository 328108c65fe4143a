package mailer

import (
	"fmt"
	"net/smtp"
	"os"
)

// Send delivers a plain-text email through the configured SMTP relay.
func Send(to, subject, body string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")

	if host == "" {
		return fmt.Errorf("SMTP_HOST not set")
	}

	auth := smtp.PlainAuth("", from, password, host)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	return smtp.SendMail(host+":"+port, auth, from, []string{to}, message)
}
