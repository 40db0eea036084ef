// Package ledger covers the account-side records: the referral profile
// derived at registration and the read-only purchase history.
package ledger

import (
	"context"
	"math/rand"
	"strconv"
	"strings"

	"github.com/jolidon/olyst/internal/api"
	"github.com/jolidon/olyst/internal/models"
)

// randIntN is a test seam for the random referral suffix.
var randIntN = rand.Intn

// DeriveCode builds a referral code from a username: lower-cased, all
// whitespace stripped, followed by a random numeric suffix in [0,10000).
// The caller stores the result once per registration; the code must not be
// re-derived afterwards.
func DeriveCode(username string) string {
	base := strings.ToLower(username)
	base = strings.Join(strings.Fields(base), "")
	return base + strconv.Itoa(randIntN(10000))
}

// Link composes the shareable referral URL for a code.
func Link(baseURL, code string) string {
	return baseURL + "/?ref=" + code
}

// NewProfile derives a code and its link in one step.
func NewProfile(baseURL, username string) models.ReferralProfile {
	code := DeriveCode(username)
	return models.ReferralProfile{Code: code, Link: Link(baseURL, code)}
}

// Ledger reads purchase and order records from the backend. It never
// mutates them and never fetches the downloadable bytes behind DownloadURL.
type Ledger struct {
	client api.Client
}

func New(client api.Client) *Ledger {
	return &Ledger{client: client}
}

// Purchases returns the caller's purchase history as the backend reports it.
func (l *Ledger) Purchases(ctx context.Context) ([]models.Purchase, error) {
	return l.client.Purchases(ctx)
}

// Checkout records an order for the given products. Payment settlement is
// the backend's concern; the client only submits the order document.
func (l *Ledger) Checkout(ctx context.Context, items []models.OrderItem, userID, userEmail string) (models.Order, error) {
	order := models.Order{
		UserID:    userID,
		UserEmail: userEmail,
		Products:  items,
	}
	for _, item := range items {
		order.TotalAmount = order.TotalAmount.Add(item.Price)
	}
	return l.client.CreateOrder(ctx, order)
}

// Order fetches a single order by id.
func (l *Ledger) Order(ctx context.Context, id string) (models.Order, error) {
	return l.client.Order(ctx, id)
}
