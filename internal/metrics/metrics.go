// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Subscription lifecycle metrics
	IncSubscriptionCreated()
	IncSubscriptionConfirmed()

	// Email delivery metrics
	IncConfirmationEmailSent()
	IncNewsletterEmailSent()
	IncEmailSendFailed(kind string) // kind: "confirmation" or "newsletter"

	// Publish fan-out metrics
	ObservePublishBatchSize(size int)
	ObservePublishDuration(duration time.Duration)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
