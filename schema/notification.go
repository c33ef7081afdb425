package schema

import (
	"time"
)

// NotificationsKey is the storage key holding the full notification list.
const NotificationsKey = "microcollab:notifications"

// NotificationType doubles as the i18n message ID prefix for the
// localized title and body of the notification.
type NotificationType string

const (
	NotifyOfferReceived    NotificationType = "offer_received"
	NotifyOfferAccepted    NotificationType = "offer_accepted"
	NotifyOfferDeclined    NotificationType = "offer_declined"
	NotifySessionStarted   NotificationType = "session_started"
	NotifySessionCompleted NotificationType = "session_completed"
	NotifySessionCancelled NotificationType = "session_cancelled"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Link      string           `json:"link"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
