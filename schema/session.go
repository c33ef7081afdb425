package schema

import (
	"time"
)

// SessionsKey is the storage key holding the full session list.
const SessionsKey = "microcollab:sessions"

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

type Session struct {
	ID              string        `json:"id"`
	RequestID       string        `json:"request_id"`
	OfferID         string        `json:"offer_id"`
	HelperID        string        `json:"helper_id"`
	RequesterID     string        `json:"requester_id"`
	Status          SessionStatus `json:"status"`
	ScheduledStart  time.Time     `json:"scheduled_start"`
	ActualStart     *time.Time    `json:"actual_start,omitempty"`
	EndTime         *time.Time    `json:"end_time,omitempty"`
	DurationMinutes int           `json:"duration_minutes"`
	Notes           string        `json:"notes"`
}

// SessionDetail is a session joined with both participants.
type SessionDetail struct {
	Session
	Helper    *User `json:"helper,omitempty"`
	Requester *User `json:"requester,omitempty"`
}
