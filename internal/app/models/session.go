package models

import "time"

// Session pairs the bearer credential with the cached profile. Presence of a
// non-empty token is the sole definition of "authenticated"; the pair is
// created whole on login/register and destroyed whole on logout.
type Session struct {
	Token string
	User  *User
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

// TokenClaims is the informational view of the stored JWT, decoded without
// verification. It never gates access; expiry is only detected lazily by the
// next backend call failing.
type TokenClaims struct {
	Subject   string     `json:"subject,omitempty"`
	IssuedAt  *time.Time `json:"issued_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
