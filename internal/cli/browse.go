package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jolidon/olyst/internal/api"
)

// Categories prints the category list. A failed fetch falls back to the
// previously seen set, so the command never errors out.
func (a *App) Categories(ctx context.Context) error {
	cats := a.catalog.Categories(ctx)
	if len(cats) == 0 {
		fmt.Fprintln(a.out, "No categories available.")
		return nil
	}
	for _, c := range cats {
		fmt.Fprintf(a.out, "%-12s %s\n", c.Name, c.Description)
	}
	return nil
}

// Products prompts for an optional category and search term and lists the
// matching products. Empty answers leave the corresponding filter off.
func (a *App) Products(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Category (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	search, err := getSimpleText(a.reader, "Search (empty for none)", os.Stdout)
	if err != nil {
		return err
	}

	items := a.catalog.Query(ctx, api.ProductFilter{Category: category, Search: search})
	a.printProducts(items)
	return nil
}

// Featured lists the featured selection: the leading slice of the unfiltered
// catalog, in server order.
func (a *App) Featured(ctx context.Context) error {
	a.printProducts(a.catalog.Featured(ctx, a.config.FeaturedLimit))
	return nil
}

// Show fetches and displays a single product by ID, followed by its reviews.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.catalog.Product(ctx, id)
	if err != nil {
		a.printErr(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "%s\n", p.Name)
	fmt.Fprintf(a.out, "Price: %s\n", p.Price.StringFixed(2))
	fmt.Fprintf(a.out, "Category: %s\n", p.Category)
	if p.Description != "" {
		fmt.Fprintln(a.out, p.Description)
	}
	if p.FileName != "" {
		fmt.Fprintf(a.out, "Deliverable: %s (%s)\n", p.FileName, p.FileType)
	}

	reviews := a.reviews.List(p.ID)
	if len(reviews) == 0 {
		fmt.Fprintln(a.out, "No reviews yet.")
		return nil
	}
	for _, r := range reviews {
		fmt.Fprintf(a.out, "[%d/5] %s\n", r.Rating, r.Comment)
	}
	return nil
}

// Review collects a rating and comment for a product. Validation failures
// are reported as form feedback; nothing is stored on invalid input.
func (a *App) Review(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}
	ratingStr, err := getSimpleText(a.reader, "Rating (1-5)", os.Stdout)
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(ratingStr)
	if err != nil {
		fmt.Fprintln(a.out, "Rating must be a number between 1 and 5.")
		return err
	}
	comment, err := getSimpleText(a.reader, "Comment", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.reviews.Add(id, rating, comment); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Thanks for your review!")
	return nil
}
