package domain

import "time"

// User is a FitStack account. The ID is the login id the user picked at
// signup and acts as the primary key everywhere (records reference it).
type User struct {
	ID           string    `bson:"_id" json:"id"`
	PasswordHash string    `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Age          *int      `bson:"age,omitempty" json:"age,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
