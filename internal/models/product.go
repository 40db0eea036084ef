package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidPrice is returned when a draft price does not parse as a
	// non-negative decimal number.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrMissingField is returned when a required draft field is empty.
	ErrMissingField = errors.New("missing required field")
)

// Product is a catalog entry. Price travels through decimal.Decimal so the
// amount survives serialization without floating rounding.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageBase64 string          `json:"image_base64,omitempty"`
	FileBase64  string          `json:"file_base64,omitempty"`
	FileName    string          `json:"file_name,omitempty"`
	FileType    string          `json:"file_type,omitempty"`
	IsActive    bool            `json:"is_active"`
}

// FileAsset is the encoded deliverable produced by the asset codec: the
// transport-safe payload plus the metadata needed to serve it back.
type FileAsset struct {
	Data     string
	Name     string
	MimeType string
}

// ProductDraft carries the admin form state for a create or update. Price is
// kept as the raw input string until validation; assets are already encoded.
type ProductDraft struct {
	Name        string
	Description string
	Price       string
	Category    string
	ImageBase64 string
	File        *FileAsset
}

// Validate checks the draft locally, before any network round trip.
// The price must parse as a non-negative decimal.
func (d *ProductDraft) Validate() (decimal.Decimal, error) {
	if strings.TrimSpace(d.Name) == "" {
		return decimal.Zero, errors.Join(ErrMissingField, errors.New("name is required"))
	}
	if strings.TrimSpace(d.Category) == "" {
		return decimal.Zero, errors.Join(ErrMissingField, errors.New("category is required"))
	}
	price, err := decimal.NewFromString(strings.TrimSpace(d.Price))
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	if price.IsNegative() {
		return decimal.Zero, ErrInvalidPrice
	}
	return price, nil
}

// SetImage stores a freshly encoded image payload. An empty payload is a
// no-op so that skipping the file prompt never clears an existing asset.
func (d *ProductDraft) SetImage(encoded string) {
	if encoded == "" {
		return
	}
	d.ImageBase64 = encoded
}

// SetFile stores a freshly encoded deliverable. A nil asset is a no-op so
// that skipping the file prompt never clears an existing asset.
func (d *ProductDraft) SetFile(f *FileAsset) {
	if f == nil {
		return
	}
	d.File = f
}

// DraftFromProduct seeds an edit form from an existing product.
func DraftFromProduct(p Product) ProductDraft {
	d := ProductDraft{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		Category:    p.Category,
		ImageBase64: p.ImageBase64,
	}
	if p.FileBase64 != "" {
		d.File = &FileAsset{Data: p.FileBase64, Name: p.FileName, MimeType: p.FileType}
	}
	return d
}
