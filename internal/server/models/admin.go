package models

import "time"

// Admin is the single owner account. Exactly one record is expected to
// exist; it is provisioned lazily on first login or by the create-admin
// endpoint.
type Admin struct {
	ID           string    `json:"-"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email,omitempty"`
	Role         string    `json:"role,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (a *Admin) Validate() error {
	v := &validator{}
	v.require("username", a.Username)
	v.require("password", a.PasswordHash)
	return v.result()
}

// Session is a server-stored login session: an opaque token with an expiry,
// rotated on refresh.
type Session struct {
	Token   string
	AdminID string
	Expires time.Time
}
