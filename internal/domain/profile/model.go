package profile

import (
	"strings"
	"time"
)

// UserProfile is the users/{uid} document. Legacy records created before
// uid stamping are still reachable through the email fallback query.
type UserProfile struct {
	UID       string    `firestore:"uid" json:"uid"`
	Username  string    `firestore:"username,omitempty" json:"username,omitempty"`
	Email     string    `firestore:"email" json:"email"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

type UpdateProfileInput struct {
	Username *string `json:"username,omitempty"`
}

func (in *UpdateProfileInput) Trim() {
	if in.Username != nil {
		u := strings.TrimSpace(*in.Username)
		in.Username = &u
	}
}
