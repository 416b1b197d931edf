package valueobjects

import "fmt"

// ContactSubject is the subject line of every contact form email
const ContactSubject = "New Contact Form Submission"

// ContactMessage is a contact form submission.
// Fields are opaque: they are neither validated nor trimmed and end up verbatim in the email body.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// NewContactMessage creates a contact message from raw form fields
func NewContactMessage(name, email, message string) ContactMessage {
	return ContactMessage{Name: name, Email: email, Message: message}
}

// Body formats the plaintext email body
func (m ContactMessage) Body() string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", m.Name, m.Email, m.Message)
}

// Receipt acknowledges a delivered contact message
type Receipt struct {
	Recipient string
	MessageID string
}
