package model

import "testing"

func TestSubscriberStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status SubscriberStatus
		want   bool
	}{
		{"pending", StatusPendingConfirmation, true},
		{"confirmed", StatusConfirmed, true},
		{"empty", SubscriberStatus(""), false},
		{"unknown", SubscriberStatus("cancelled"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestSubscriber_IsConfirmed(t *testing.T) {
	pending := &Subscriber{Status: StatusPendingConfirmation}
	if pending.IsConfirmed() {
		t.Error("pending subscriber should not be confirmed")
	}

	confirmed := &Subscriber{Status: StatusConfirmed}
	if !confirmed.IsConfirmed() {
		t.Error("confirmed subscriber should report confirmed")
	}
}
