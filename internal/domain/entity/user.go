package entity

import (
	"time"
)

// User is the aggregate root for the user management domain.
// Records are replaced wholesale on update; ID and CreatedAt never change
// after creation.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
