package domain

import "time"

// User mirrors a profile owned by the external identity provider.
type User struct {
	ID          string    `json:"id"`
	ExternalID  string    `json:"external_id"` // identity provider's subject
	UserName    string    `json:"user_name"`
	Email       string    `json:"email"`
	Image       *string   `json:"image"`
	AuthMethod  string    `json:"auth_method"` // "google" or "email"
	HasPassword bool      `json:"has_password"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileUpdate is a partial profile change. Nil fields are left unchanged;
// ImageSet distinguishes clearing the image from not touching it.
type ProfileUpdate struct {
	UserName *string
	Image    *string
	ImageSet bool
}
