// Package models contains the domain records persisted by the server.
package models

// User is an account record. PasswordHash is the bcrypt hash of the
// signup password; it is stored at rest but must never appear in an
// HTTP response.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	PasswordHash string `json:"passwordHash"`
}
