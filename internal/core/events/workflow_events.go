package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	RequestStatusChangedEvent = "request.status_changed"
	RequestSubmittedEvent     = "request.submitted"
)

// NewRequestStatusChanged is published after every workflow status mutation
// (advance, reject, complete). Subscribers re-derive project usage from it.
func NewRequestStatusChanged(requestID, projectID, oldStatus, newStatus string, amount int64) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      RequestStatusChangedEvent,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"request_id": requestID,
			"project_id": projectID,
			"old_status": oldStatus,
			"new_status": newStatus,
			"amount":     amount,
		},
	}
}

func NewRequestSubmitted(requestID, projectID, requesterID string, amount int64) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      RequestSubmittedEvent,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"request_id":   requestID,
			"project_id":   projectID,
			"requester_id": requesterID,
			"amount":       amount,
		},
	}
}
