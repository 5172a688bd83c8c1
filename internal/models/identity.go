package models

import "time"

// Identity is the externally-authenticated principal as known to Casdoor,
// independent of role. The RoleTag field mirrors the denormalized role hint
// stored on the Casdoor profile; table membership is the source of truth and
// the tag is never used for authorization.
type Identity struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	AvatarURL     *string   `json:"avatar_url"`
	EmailVerified bool      `json:"email_verified"`
	RoleTag       string    `json:"role_tag,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
