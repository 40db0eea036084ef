package models

import "github.com/shopspring/decimal"

// ReferralProfile is derived once at registration and stays stable for the
// lifetime of the session.
type ReferralProfile struct {
	Code string
	Link string
}

// Purchase is a read-only record of a past purchase, sourced from the
// backend. The client exposes DownloadURL but never fetches its bytes.
type Purchase struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	Date        string `json:"date"`
	DownloadURL string `json:"download_url"`
}

// OrderItem is one line of an order as the backend expects it.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// Order mirrors the backend order document. Payment settlement happens
// elsewhere; the client only creates and reads orders.
type Order struct {
	ID            string          `json:"id,omitempty"`
	UserID        string          `json:"user_id,omitempty"`
	UserEmail     string          `json:"user_email,omitempty"`
	Products      []OrderItem     `json:"products"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
}
