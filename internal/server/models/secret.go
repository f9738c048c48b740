package models

import "time"

// Secret is a short text note owned by exactly one user.
type Secret struct {
	ID        string
	OwnerID   string
	Content   string
	CreatedAt time.Time
}
