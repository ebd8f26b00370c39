package mailer

import (
	"fmt"
	"html"
	"net"
	"net/smtp"
	"os"
	"time"
)

// serviceHosts maps the EMAIL_SERVICE names accepted in the environment to
// their SMTP submission hosts. Unknown values are used as the host directly.
var serviceHosts = map[string]string{
	"gmail":   "smtp.gmail.com",
	"outlook": "smtp.office365.com",
	"yahoo":   "smtp.mail.yahoo.com",
}

// Mailer sends the owner-notification mail for new contact submissions.
// Sending is purely advisory: the contact API never waits on it and never
// reports its failures to the visitor.
type Mailer struct {
	host      string
	port      string
	user      string
	password  string
	recipient string
}

// NewFromEnv builds a Mailer from EMAIL_SERVICE, EMAIL_USER, EMAIL_PASSWORD
// and RECIPIENT_EMAIL. The recipient defaults to the sending account.
func NewFromEnv() *Mailer {
	service := os.Getenv("EMAIL_SERVICE")
	if service == "" {
		service = "gmail"
	}
	host, ok := serviceHosts[service]
	if !ok {
		host = service
	}

	user := os.Getenv("EMAIL_USER")
	recipient := os.Getenv("RECIPIENT_EMAIL")
	if recipient == "" {
		recipient = user
	}

	return &Mailer{
		host:      host,
		port:      "587",
		user:      user,
		password:  os.Getenv("EMAIL_PASSWORD"),
		recipient: recipient,
	}
}

// Configured reports whether account credentials are present.
func (m *Mailer) Configured() bool {
	return m.user != "" && m.password != ""
}

// Verify checks that the SMTP host is reachable. It is called once at
// process start; a failure means notifications will not go out, nothing
// more.
func (m *Mailer) Verify() error {
	if !m.Configured() {
		return fmt.Errorf("EMAIL_USER and EMAIL_PASSWORD are not set")
	}
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(m.host, m.port), 5*time.Second)
	if err != nil {
		return fmt.Errorf("SMTP host unreachable: %w", err)
	}
	return conn.Close()
}

// Send delivers the new-submission notification to the configured recipient.
func (m *Mailer) Send(name, email, subject, message string) error {
	if !m.Configured() {
		return fmt.Errorf("mail transport not configured")
	}

	msg := BuildNotification(name, email, subject, message)
	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return smtp.SendMail(net.JoinHostPort(m.host, m.port), auth, m.user, []string{m.recipient}, msg)
}

// BuildNotification renders the full SMTP message (headers plus HTML body)
// for one submission. User-supplied fields are escaped before they reach
// the markup.
func BuildNotification(name, email, subject, message string) []byte {
	header := "Subject: New Contact Form Submission: " + sanitizeHeader(subject) + "\r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9fafb; border-radius: 10px;">
		<h2 style="color: #1f2937; border-bottom: 3px solid #3b82f6; padding-bottom: 10px;">New Contact Form Submission</h2>
		<div style="background-color: white; padding: 20px; border-radius: 8px; margin-top: 20px;">
			<p style="margin: 10px 0;"><strong>Name:</strong> %s</p>
			<p style="margin: 10px 0;"><strong>Email:</strong> %s</p>
			<p style="margin: 10px 0;"><strong>Subject:</strong> %s</p>
			<div style="margin-top: 20px; padding-top: 20px; border-top: 1px solid #e5e7eb;">
				<p style="margin: 10px 0;"><strong>Message:</strong></p>
				<div style="background-color: #f3f4f6; padding: 15px; border-radius: 6px;">
					<p style="color: #4b5563; line-height: 1.6; white-space: pre-wrap;">%s</p>
				</div>
			</div>
		</div>
		<div style="margin-top: 20px; padding: 15px; background-color: #eff6ff; border-left: 4px solid #3b82f6;">
			<p style="margin: 0; color: #1e40af; font-size: 14px;">You can reply directly to <strong>%s</strong></p>
		</div>
		<p style="text-align: center; color: #9ca3af; font-size: 12px; margin-top: 30px;">Sent from your portfolio website</p>
	</div>
`,
		html.EscapeString(name),
		html.EscapeString(email),
		html.EscapeString(subject),
		html.EscapeString(message),
		html.EscapeString(email),
	)

	return []byte(header + mime + body)
}

// sanitizeHeader strips CR/LF so user input cannot inject extra headers.
func sanitizeHeader(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\r' || r == '\n' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
