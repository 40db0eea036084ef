package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jolidon/olyst/internal/models"
)

// Purchases lists the caller's purchase history. Download URLs are printed
// as-is; the content behind them is never fetched.
func (a *App) Purchases(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	purchases, err := a.ledger.Purchases(ctx)
	if err != nil {
		a.printErr(ctx, err)
		return err
	}
	if len(purchases) == 0 {
		fmt.Fprintln(a.out, "No purchases yet.")
		return nil
	}
	for _, p := range purchases {
		fmt.Fprintf(a.out, "%s  %-30s %s\n", p.Date, p.ProductName, p.DownloadURL)
	}
	return nil
}

// Referral prints the referral code and shareable link. The profile only
// exists for sessions that registered in this run; logins display a hint
// instead.
func (a *App) Referral(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	profile, ok := a.session.ReferralProfile()
	if !ok {
		fmt.Fprintln(a.out, "No referral profile for this session.")
		return nil
	}
	fmt.Fprintf(a.out, "Code: %s\n", profile.Code)
	fmt.Fprintf(a.out, "Link: %s\n", profile.Link)
	return nil
}

// Buy orders a single product by ID. The product is looked up first so the
// order carries the current name and price; the backend settles payment.
func (a *App) Buy(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.catalog.Product(ctx, id)
	if err != nil {
		a.printErr(ctx, err)
		return err
	}

	if !GetConfirmation(a.reader, fmt.Sprintf("Buy %q for %s?", p.Name, p.Price.StringFixed(2)), a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	u, _ := a.session.User()
	items := []models.OrderItem{{ProductID: p.ID, Name: p.Name, Price: p.Price}}
	order, err := a.ledger.Checkout(ctx, items, u.ID, u.Email)
	if err != nil {
		a.printErr(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Order %s placed, total %s\n", order.ID, order.TotalAmount.StringFixed(2))
	return nil
}
