package domain

import "time"

// Agent models a call-center staff member who acts on escalation workflows.
type Agent struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
