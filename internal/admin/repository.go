// Package admin implements the catalog management operations available to
// administrators: list, create, update and delete, including the encoded
// binary assets carried on product drafts.
package admin

import (
	"context"
	"errors"
	"sync"

	"github.com/jolidon/olyst/internal/api"
	"github.com/jolidon/olyst/internal/logging"
	"github.com/jolidon/olyst/internal/models"
)

var (
	// ErrAccessDenied is returned when the session lacks the admin role.
	// The operation is not retried and no network call is made.
	ErrAccessDenied = errors.New("admin access required")

	// ErrValidation classifies malformed local input, rejected before any
	// network round trip.
	ErrValidation = errors.New("validation failed")
)

// Gate exposes the session check the repository needs. session.Manager
// satisfies it.
type Gate interface {
	IsAdmin() bool
}

// Repository manages the product catalog on behalf of an admin session.
// Every operation is gated on the admin role.
type Repository struct {
	client api.Client
	gate   Gate
	log    logging.Logger

	mu       sync.Mutex
	products []models.Product
}

func NewRepository(client api.Client, gate Gate, log logging.Logger) *Repository {
	return &Repository{client: client, gate: gate, log: log.With("component", "admin")}
}

// List fetches all products, active and inactive, and caches the result.
func (r *Repository) List(ctx context.Context) ([]models.Product, error) {
	if !r.gate.IsAdmin() {
		return nil, ErrAccessDenied
	}

	items, err := r.client.AdminProducts(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.products = items
	r.mu.Unlock()
	return r.Products(), nil
}

// Products returns the cached list from the last successful List.
func (r *Repository) Products() []models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

// Create submits a new product. The draft is validated locally first; an
// invalid price never reaches the network. On success the cached list is
// refreshed; on failure the caller's draft is left intact for resubmission.
func (r *Repository) Create(ctx context.Context, draft models.ProductDraft) error {
	if !r.gate.IsAdmin() {
		return ErrAccessDenied
	}

	payload, err := payloadFromDraft(draft)
	if err != nil {
		return err
	}

	if _, err := r.client.CreateProduct(ctx, payload); err != nil {
		return err
	}

	r.refresh(ctx)
	return nil
}

// Update submits changed fields for an existing product. Same contract as
// Create.
func (r *Repository) Update(ctx context.Context, id string, draft models.ProductDraft) error {
	if !r.gate.IsAdmin() {
		return ErrAccessDenied
	}

	payload, err := payloadFromDraft(draft)
	if err != nil {
		return err
	}

	if err := r.client.UpdateProduct(ctx, id, payload); err != nil {
		return err
	}

	r.refresh(ctx)
	return nil
}

// Delete removes a product. The confirmation step belongs to the caller;
// once the backend accepts the call the deletion is irreversible here.
// On failure the product remains in the list.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if !r.gate.IsAdmin() {
		return ErrAccessDenied
	}

	if err := r.client.DeleteProduct(ctx, id); err != nil {
		return err
	}

	r.refresh(ctx)
	return nil
}

// refresh re-runs List after a successful write. A refresh failure does not
// undo the write, so it only logs.
func (r *Repository) refresh(ctx context.Context) {
	if _, err := r.List(ctx); err != nil {
		r.log.Warn(ctx, "list refresh after write failed", "error", err)
	}
}

func payloadFromDraft(draft models.ProductDraft) (api.ProductPayload, error) {
	price, err := draft.Validate()
	if err != nil {
		return api.ProductPayload{}, errors.Join(ErrValidation, err)
	}

	payload := api.ProductPayload{
		Name:        draft.Name,
		Description: draft.Description,
		Price:       price,
		Category:    draft.Category,
		ImageBase64: draft.ImageBase64,
	}
	if draft.File != nil {
		payload.FileBase64 = draft.File.Data
		payload.FileName = draft.File.Name
		payload.FileType = draft.File.MimeType
	}
	return payload, nil
}
