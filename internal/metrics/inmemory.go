package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	SubscriptionsCreated     uint64
	SubscriptionsConfirmed   uint64
	ConfirmationEmailsSent   uint64
	NewsletterEmailsSent     uint64
	ConfirmationSendFailures uint64
	NewsletterSendFailures   uint64
	PublishBatchCount        uint64
	PublishBatchSizeTotal    uint64
	PublishDurationTotalNs   int64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	subscriptionsCreated     uint64
	subscriptionsConfirmed   uint64
	confirmationEmailsSent   uint64
	newsletterEmailsSent     uint64
	confirmationSendFailures uint64
	newsletterSendFailures   uint64
	publishBatchCount        uint64
	publishBatchSizeTotal    uint64
	publishDurationTotalNs   int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		SubscriptionsCreated:     atomic.LoadUint64(&m.subscriptionsCreated),
		SubscriptionsConfirmed:   atomic.LoadUint64(&m.subscriptionsConfirmed),
		ConfirmationEmailsSent:   atomic.LoadUint64(&m.confirmationEmailsSent),
		NewsletterEmailsSent:     atomic.LoadUint64(&m.newsletterEmailsSent),
		ConfirmationSendFailures: atomic.LoadUint64(&m.confirmationSendFailures),
		NewsletterSendFailures:   atomic.LoadUint64(&m.newsletterSendFailures),
		PublishBatchCount:        atomic.LoadUint64(&m.publishBatchCount),
		PublishBatchSizeTotal:    atomic.LoadUint64(&m.publishBatchSizeTotal),
		PublishDurationTotalNs:   atomic.LoadInt64(&m.publishDurationTotalNs),
	}
}

// IncSubscriptionCreated increments the created counter.
func (m *InMemoryRecorder) IncSubscriptionCreated() {
	atomic.AddUint64(&m.subscriptionsCreated, 1)
}

// IncSubscriptionConfirmed increments the confirmed counter.
func (m *InMemoryRecorder) IncSubscriptionConfirmed() {
	atomic.AddUint64(&m.subscriptionsConfirmed, 1)
}

// IncConfirmationEmailSent increments the confirmation email counter.
func (m *InMemoryRecorder) IncConfirmationEmailSent() {
	atomic.AddUint64(&m.confirmationEmailsSent, 1)
}

// IncNewsletterEmailSent increments the newsletter email counter.
func (m *InMemoryRecorder) IncNewsletterEmailSent() {
	atomic.AddUint64(&m.newsletterEmailsSent, 1)
}

// IncEmailSendFailed increments the failure counter for the given kind.
func (m *InMemoryRecorder) IncEmailSendFailed(kind string) {
	switch kind {
	case "confirmation":
		atomic.AddUint64(&m.confirmationSendFailures, 1)
	case "newsletter":
		atomic.AddUint64(&m.newsletterSendFailures, 1)
	}
}

// ObservePublishBatchSize records the size of a publish fan-out.
func (m *InMemoryRecorder) ObservePublishBatchSize(size int) {
	atomic.AddUint64(&m.publishBatchCount, 1)
	atomic.AddUint64(&m.publishBatchSizeTotal, uint64(size))
}

// ObservePublishDuration records the duration of a publish fan-out.
func (m *InMemoryRecorder) ObservePublishDuration(duration time.Duration) {
	atomic.AddInt64(&m.publishDurationTotalNs, duration.Nanoseconds())
}
