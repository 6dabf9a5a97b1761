package model

import "time"

// AddressModel is the stored form of a saved delivery address.
type AddressModel struct {
	Label      string `bson:"label"`
	Street     string `bson:"street"`
	City       string `bson:"city"`
	State      string `bson:"state"`
	PostalCode string `bson:"postal_code"`
	Phone      string `bson:"phone,omitempty"`
}

// UserModel is the stored form of a user document.
type UserModel struct {
	ID        string         `bson:"_id"`
	Email     string         `bson:"email,omitempty"`
	Phone     string         `bson:"phone,omitempty"`
	Name      string         `bson:"name"`
	Addresses []AddressModel `bson:"addresses"`
	CreatedAt time.Time      `bson:"created_at"`
	UpdatedAt time.Time      `bson:"updated_at"`
}
