package schema

import (
	"time"
)

// RequestsKey is the storage key holding the full request list.
const RequestsKey = "microcollab:requests"

type RequestStatus string

const (
	RequestOpen       RequestStatus = "open"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestCancelled  RequestStatus = "cancelled"
)

type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyNormal   Urgency = "normal"
	UrgencyCritical Urgency = "critical"
)

// urgencyRank orders urgencies for the `urgent` sort. Higher comes first.
var urgencyRank = map[Urgency]int{
	UrgencyCritical: 2,
	UrgencyNormal:   1,
	UrgencyLow:      0,
}

// Rank returns the sort weight of an urgency. Unknown values rank lowest.
func (u Urgency) Rank() int {
	return urgencyRank[u]
}

type RequestMode string

const (
	ModeAsync RequestMode = "async"
	ModeLive  RequestMode = "live"
)

type BudgetType string

const (
	BudgetHourly BudgetType = "hourly"
	BudgetFixed  BudgetType = "fixed"
)

type Request struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Tags          []string      `json:"tags"`
	DurationHours int           `json:"duration_hours"`
	Urgency       Urgency       `json:"urgency"`
	Mode          RequestMode   `json:"mode"`
	Budget        *int          `json:"budget,omitempty"`
	BudgetType    BudgetType    `json:"budget_type"`
	Status        RequestStatus `json:"status"`
	CreatedBy     string        `json:"created_by"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// RequestDetail is a request joined with its creator and offer count.
type RequestDetail struct {
	Request
	Creator    *User `json:"creator,omitempty"`
	OfferCount int   `json:"offer_count"`
}

const (
	SortNewest    = "newest"
	SortUrgent    = "urgent"
	SortBudget    = "budget"
	SortBestMatch = "best_match"
)

// RequestFilter is applied linearly over the stored request list.
type RequestFilter struct {
	Tags        []string      `json:"tags" form:"tags"`
	MaxDuration int           `json:"max_duration" form:"max_duration"`
	Urgency     Urgency       `json:"urgency" form:"urgency"`
	Mode        RequestMode   `json:"mode" form:"mode"`
	Status      RequestStatus `json:"status" form:"status"`
	Search      string        `json:"search" form:"search"`
	Sort        string        `json:"sort" form:"sort"`
}

// RequestParams are the caller-supplied fields of a new request.
type RequestParams struct {
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Tags          []string    `json:"tags"`
	DurationHours int         `json:"duration_hours"`
	Urgency       Urgency     `json:"urgency"`
	Mode          RequestMode `json:"mode"`
	Budget        *int        `json:"budget"`
	BudgetType    BudgetType  `json:"budget_type"`
}

// RequestUpdate carries mutable request fields. Nil fields are left untouched.
// Status is applied verbatim; transitions are not validated here.
type RequestUpdate struct {
	Title         *string        `json:"title"`
	Description   *string        `json:"description"`
	Tags          []string       `json:"tags"`
	DurationHours *int           `json:"duration_hours"`
	Urgency       *Urgency       `json:"urgency"`
	Mode          *RequestMode   `json:"mode"`
	Budget        *int           `json:"budget"`
	Status        *RequestStatus `json:"status"`
}
