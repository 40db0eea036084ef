package models

// Category is immutable reference data fetched from the backend.
// Instances are keyed by ID and kept in the order the API returns them.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
