package models

// User is the profile cached alongside the credential. It may go stale
// relative to the server; only explicit profile loads refresh it.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Age       *int   `json:"age,omitempty"`
	Gender    string `json:"gender,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
