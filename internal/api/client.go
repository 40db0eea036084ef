// Package api defines the contract with the Olyst backend and its HTTP
// implementation. The rest of the client depends only on the Client
// interface, so tests substitute fakes freely.
package api

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jolidon/olyst/internal/models"
)

// ProductFilter narrows a product listing. Empty fields are omitted from the
// outbound query entirely; filtering itself is the server's job.
type ProductFilter struct {
	Category string
	Search   string
}

// ProductPayload is the request body for product create/update calls.
type ProductPayload struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageBase64 string          `json:"image_base64,omitempty"`
	FileBase64  string          `json:"file_base64,omitempty"`
	FileName    string          `json:"file_name,omitempty"`
	FileType    string          `json:"file_type,omitempty"`
}

// AuthResponse is the body returned by login and register.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Client is the Remote API collaborator. All calls honor context
// cancellation. Authenticated calls carry the token set via SetToken as a
// bearer credential; after ClearToken the header is omitted entirely.
type Client interface {
	Login(ctx context.Context, email, password string) (AuthResponse, error)
	Register(ctx context.Context, email, username, password string) (AuthResponse, error)
	Me(ctx context.Context) (models.User, error)

	Categories(ctx context.Context) ([]models.Category, error)
	Products(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	Product(ctx context.Context, id string) (models.Product, error)

	AdminProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, p ProductPayload) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, p ProductPayload) error
	DeleteProduct(ctx context.Context, id string) error

	Purchases(ctx context.Context) ([]models.Purchase, error)
	CreateOrder(ctx context.Context, o models.Order) (models.Order, error)
	Order(ctx context.Context, id string) (models.Order, error)

	SetToken(token string)
	ClearToken()
	Token() string
}
