package schema

import (
	"time"
)

// MessagesKey is the storage key holding the full message list.
const MessagesKey = "microcollab:messages"

type MessageType string

const (
	MessageText   MessageType = "text"
	MessageCode   MessageType = "code"
	MessageSystem MessageType = "system"
)

type Message struct {
	ID        string      `json:"id"`
	SessionID string      `json:"session_id"`
	SenderID  string      `json:"sender_id"`
	Content   string      `json:"content"`
	Type      MessageType `json:"type"`
	CreatedAt time.Time   `json:"created_at"`
}
