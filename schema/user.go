package schema

import (
	"time"
)

// UsersKey is the storage key holding the full user list.
const UsersKey = "microcollab:users"

type AvailabilityStatus string

const (
	UserAvailable AvailabilityStatus = "available"
	UserBusy      AvailabilityStatus = "busy"
	UserOffline   AvailabilityStatus = "offline"
)

type UserRole string

const (
	RoleRequester UserRole = "requester"
	RoleHelper    UserRole = "helper"
	RoleBoth      UserRole = "both"
)

type User struct {
	ID                 string             `json:"id"`
	Email              string             `json:"email"`
	Name               string             `json:"name"`
	Bio                string             `json:"bio"`
	Skills             []string           `json:"skills"`
	Timezone           string             `json:"timezone"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status"`
	AvatarURL          string             `json:"avatar_url"`
	Rating             float64            `json:"rating"`
	SessionsCompleted  int                `json:"sessions_completed"`
	HourlyRate         *int               `json:"hourly_rate,omitempty"`
	Role               UserRole           `json:"role"`
	CreatedAt          time.Time          `json:"created_at"`
}

// UserUpdate carries the mutable profile fields. Nil fields are left untouched.
type UserUpdate struct {
	Name               *string             `json:"name"`
	Bio                *string             `json:"bio"`
	Skills             []string            `json:"skills"`
	Timezone           *string             `json:"timezone"`
	AvailabilityStatus *AvailabilityStatus `json:"availability_status"`
	HourlyRate         *int                `json:"hourly_rate"`
}

// HelperFilter narrows the helper directory listing.
type HelperFilter struct {
	Skill        string             `json:"skill" form:"skill"`
	Availability AvailabilityStatus `json:"availability" form:"availability"`
}
