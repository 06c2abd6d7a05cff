package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// Admin is a back-office operator. Presence of a row is what authorizes the
// admin console; there are no finer-grained permissions.
type Admin struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Credential stores a login identity. The client linkage is metadata captured
// at registration time; authorization is always re-derived from the clients
// and admins tables, never from the credential itself.
type Credential struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ClientID     string    `json:"client_id,omitempty"`
	InviteCode   string    `json:"invite_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
