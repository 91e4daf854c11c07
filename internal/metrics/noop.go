package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncSubscriptionCreated is a no-op.
func (n *NoopRecorder) IncSubscriptionCreated() {}

// IncSubscriptionConfirmed is a no-op.
func (n *NoopRecorder) IncSubscriptionConfirmed() {}

// IncConfirmationEmailSent is a no-op.
func (n *NoopRecorder) IncConfirmationEmailSent() {}

// IncNewsletterEmailSent is a no-op.
func (n *NoopRecorder) IncNewsletterEmailSent() {}

// IncEmailSendFailed is a no-op.
func (n *NoopRecorder) IncEmailSendFailed(kind string) {}

// ObservePublishBatchSize is a no-op.
func (n *NoopRecorder) ObservePublishBatchSize(size int) {}

// ObservePublishDuration is a no-op.
func (n *NoopRecorder) ObservePublishDuration(duration time.Duration) {}
