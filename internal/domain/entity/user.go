package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a customer account, identified by at least one verified contact
// method (email or phone).
type User struct {
	ID        uuid.UUID
	Email     string // Optional; at least one of Email/Phone is set.
	Phone     string // Optional; at least one of Email/Phone is set.
	Name      string
	Addresses []Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Address is a saved delivery address. Orders snapshot one of these at
// placement time.
type Address struct {
	Label      string // e.g. "home", "office".
	Street     string
	City       string
	State      string
	PostalCode string
	Phone      string
}
