// Package models defines the marketplace domain types exchanged with the
// Olyst backend and held in client state.
package models

// User is the authenticated identity as returned by the backend.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}
