package dto

// NewsletterContent carries the two renderings of an issue body.
type NewsletterContent struct {
	Text string `json:"text"`
	HTML string `json:"html"`
}

// PublishNewsletterRequest is the payload for publishing an issue.
type PublishNewsletterRequest struct {
	Title   string            `json:"title"`
	Content NewsletterContent `json:"content"`
}

// PublishNewsletterResponse summarizes the delivery fan-out.
type PublishNewsletterResponse struct {
	IssueID string `json:"issue_id"`
	Sent    int    `json:"sent"`
	Failed  int    `json:"failed"`
}
