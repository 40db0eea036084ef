package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jolidon/olyst/internal/api"
	"github.com/jolidon/olyst/internal/models"
)

// printErr renders an error for the user. Backend rejections carry their own
// detail message; transport failures get a fixed hint. Everything else is
// printed verbatim.
func (a *App) printErr(ctx context.Context, err error) {
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr):
		fmt.Fprintln(a.out, apiErr.Message())
	case errors.Is(err, api.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable, please try again later.")
		a.log.Warn(ctx, "request failed", "error", err)
	default:
		fmt.Fprintln(a.out, err.Error())
	}
}

func (a *App) printProducts(items []models.Product) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No products found.")
		return
	}
	for _, p := range items {
		fmt.Fprintf(a.out, "%s  %-30s %10s  %s\n", p.ID, p.Name, p.Price.StringFixed(2), p.Category)
	}
}
