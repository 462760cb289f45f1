package email

import (
	"fmt"
)

// WelcomeMessage builds the post-registration welcome mail.
func WelcomeMessage(to, fullName string) *Message {
	return &Message{
		To:      to,
		Subject: "Welcome to MentorHub",
		HTML: fmt.Sprintf(
			`<h2>Welcome, %s!</h2><p>Your account has been created. Log in to set up your profile.</p>`,
			fullName,
		),
	}
}
