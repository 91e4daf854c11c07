package model

import "time"

// NewsletterContent is the payload of a single newsletter issue.
// It is constructed per publish request and not persisted as-is.
type NewsletterContent struct {
	Title    string
	TextBody string
	HTMLBody string
}

// NewsletterIssue is the audit record written after a publish run.
type NewsletterIssue struct {
	ID               string
	Title            string
	SentCount        int
	FailedCount      int
	FailedRecipients []string
	PublishedBy      string
	PublishedAt      time.Time
}
