package entity

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is an authenticated principal of the back office.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin, staff
	Status       string // active, disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
