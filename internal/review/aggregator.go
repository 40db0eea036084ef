// Package review keeps per-product reviews in memory. The collection is
// append-only and not persisted remotely; a production deployment would back
// it with a review endpoint on the API.
package review

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jolidon/olyst/internal/models"
)

var (
	// ErrRatingOutOfRange is returned when the rating is not in 1..5.
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")

	// ErrEmptyComment is returned when the comment is empty after trimming.
	ErrEmptyComment = errors.New("comment must not be empty")
)

// Aggregator collects reviews per product, preserving insertion order.
type Aggregator struct {
	mu      sync.RWMutex
	reviews map[string][]models.Review
}

func NewAggregator() *Aggregator {
	return &Aggregator{reviews: make(map[string][]models.Review)}
}

// Add validates and appends one review. Invalid input leaves the collection
// untouched; the returned error is for local form feedback only.
func (a *Aggregator) Add(productID string, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrRatingOutOfRange
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return ErrEmptyComment
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.reviews[productID] = append(a.reviews[productID], models.Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
	})
	return nil
}

// List returns the reviews for a product in insertion order. Products
// without reviews yield an empty slice; List never fails.
func (a *Aggregator) List(productID string) []models.Review {
	a.mu.RLock()
	defer a.mu.RUnlock()

	src := a.reviews[productID]
	out := make([]models.Review, len(src))
	copy(out, src)
	return out
}
