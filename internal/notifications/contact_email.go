package notifications

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"codecrest-backend/internal/contacts"
)

const contactNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>New contact form message</h3>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Phone:</strong> {{.Phone}}</p>
  <p><strong>Company:</strong> {{.Company}}</p>
  <p><strong>ID:</strong> {{.ID}}</p>
  <p><strong>Message:</strong><br/>{{.Message}}</p>
</body>
</html>`

var contactNotificationTmpl = template.Must(template.New("contact_notification").Parse(contactNotificationTemplate))

// SendContactNotification mails the inbound message to the configured inbox.
func (c *BrevoClient) SendContactNotification(ctx context.Context, msg contacts.Contact) (string, error) {
	if c == nil {
		return "", errors.New("brevo client is nil")
	}
	subject := fmt.Sprintf("New inquiry from %s", msg.Name)
	htmlBody, err := buildContactNotificationHTML(msg)
	if err != nil {
		return "", err
	}
	return c.sendHTML(ctx, c.recipient, "", subject, htmlBody)
}

func buildContactNotificationHTML(msg contacts.Contact) (string, error) {
	var buf bytes.Buffer
	if err := contactNotificationTmpl.Execute(&buf, msg); err != nil {
		return "", err
	}
	return buf.String(), nil
}
