package email

// Message is a plain email message.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Provider sends transactional mail. Sending is always best-effort for the
// caller: failures are logged by the service layer, never surfaced to users.
type Provider interface {
	Send(msg *Message) error
}

// NoopProvider is used when SMTP is not configured.
type NoopProvider struct{}

func (NoopProvider) Send(*Message) error { return nil }
