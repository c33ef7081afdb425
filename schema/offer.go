package schema

import (
	"time"
)

// OffersKey is the storage key holding the full offer list.
const OffersKey = "microcollab:offers"

type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferDeclined OfferStatus = "declined"
)

type Offer struct {
	ID           string      `json:"id"`
	RequestID    string      `json:"request_id"`
	OfferedBy    string      `json:"offered_by"`
	Message      string      `json:"message"`
	ProposedTime time.Time   `json:"proposed_time"`
	ProposedRate *int        `json:"proposed_rate,omitempty"`
	Status       OfferStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// OfferDetail is an offer joined with the offering user.
type OfferDetail struct {
	Offer
	Helper *User `json:"helper,omitempty"`
}

// OfferParams are the caller-supplied fields of a new offer.
type OfferParams struct {
	RequestID    string    `json:"request_id"`
	Message      string    `json:"message"`
	ProposedTime time.Time `json:"proposed_time"`
	ProposedRate *int      `json:"proposed_rate"`
}
