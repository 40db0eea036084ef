package ledger

import (
	"context"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jolidon/olyst/internal/api"
	"github.com/jolidon/olyst/internal/models"
)

// fakeAPI overrides only the calls the ledger makes; anything else panics,
// which flags unexpected traffic in tests.
type fakeAPI struct {
	api.Client

	purchases []models.Purchase

	lastOrder models.Order
	orderErr  error
}

func (f *fakeAPI) Purchases(ctx context.Context) ([]models.Purchase, error) {
	return f.purchases, nil
}

func (f *fakeAPI) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	f.lastOrder = o
	if f.orderErr != nil {
		return models.Order{}, f.orderErr
	}
	o.ID = "o1"
	o.Status = "pending"
	return o, nil
}

func TestDeriveCode_Shape(t *testing.T) {
	code := DeriveCode("Jane Doe")
	assert.Regexp(t, regexp.MustCompile(`^janedoe\d+$`), code)
}

func TestDeriveCode_StripsAllWhitespace(t *testing.T) {
	restore := randIntN
	randIntN = func(int) int { return 7 }
	defer func() { randIntN = restore }()

	assert.Equal(t, "janedoe7", DeriveCode("  Jane \t Doe "))
}

func TestDeriveCode_SuffixRange(t *testing.T) {
	re := regexp.MustCompile(`^user(\d{1,4})$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, re, DeriveCode("user"))
	}
}

func TestLink(t *testing.T) {
	assert.Equal(t, "https://olyst.com/?ref=janedoe7", Link("https://olyst.com", "janedoe7"))
}

func TestNewProfile_CodeMatchesLink(t *testing.T) {
	p := NewProfile("https://olyst.com", "Jane Doe")
	assert.Equal(t, "https://olyst.com/?ref="+p.Code, p.Link)
}

func TestPurchases_Passthrough(t *testing.T) {
	f := &fakeAPI{purchases: []models.Purchase{
		{ID: "o1", ProductName: "Go eBook", Date: "2025-01-02", DownloadURL: "https://dl/o1"},
	}}
	l := New(f)

	got, err := l.Purchases(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://dl/o1", got[0].DownloadURL)
}

func TestCheckout_SumsTotal(t *testing.T) {
	f := &fakeAPI{}
	l := New(f)

	items := []models.OrderItem{
		{ProductID: "p1", Name: "A", Price: decimal.RequireFromString("9.99")},
		{ProductID: "p2", Name: "B", Price: decimal.RequireFromString("0.01")},
	}

	order, err := l.Checkout(context.Background(), items, "u1", "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	assert.True(t, f.lastOrder.TotalAmount.Equal(decimal.RequireFromString("10")),
		"total was %s", f.lastOrder.TotalAmount)
	assert.Equal(t, "u1", f.lastOrder.UserID)
}
