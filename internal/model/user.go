package model

import "time"

// User is an account in the application. Credential handling lives with the
// external auth provider; this record only carries profile data.
type User struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Email      string    `db:"email" json:"email"`
	Bio        string    `db:"bio" json:"bio"`
	DateJoined time.Time `db:"date_joined" json:"date_joined"`
}
