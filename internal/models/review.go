package models

// Review is a client-side product review. Reviews are append-only and scoped
// per product; the ID is assigned locally when the review is accepted.
type Review struct {
	ID        string
	ProductID string
	Rating    int
	Comment   string
}
