// Package models defines server-side data models persisted by the stores.
package models

import "time"

// User is an account record. PasswordHash is a bcrypt hash; plaintext never
// reaches the store.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
