package email

import "fmt"

// ConfirmationSubject is the subject line of confirmation emails.
const ConfirmationSubject = "Welcome!"

// ConfirmationBodies renders the HTML and text bodies of a confirmation
// email.
func ConfirmationBodies(name, confirmationLink string) (html, text string) {
	html = fmt.Sprintf(
		"<p>Welcome to our newsletter, %s!</p><p>Visit <a href=\"%s\">this link</a> to confirm your subscription.</p>",
		name, confirmationLink,
	)
	text = fmt.Sprintf(
		"Welcome to our newsletter, %s!\nVisit %s to confirm your subscription.",
		name, confirmationLink,
	)
	return html, text
}
