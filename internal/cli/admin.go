package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jolidon/olyst/internal/admin"
	"github.com/jolidon/olyst/internal/asset"
	"github.com/jolidon/olyst/internal/models"
)

// AdminProducts lists every product, active and inactive.
func (a *App) AdminProducts(ctx context.Context) error {
	items, err := a.admin.List(ctx)
	if err != nil {
		a.printAdminErr(ctx, err)
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No products.")
		return nil
	}
	for _, p := range items {
		state := "active"
		if !p.IsActive {
			state = "inactive"
		}
		fmt.Fprintf(a.out, "%s  %-30s %10s  %-12s %s\n",
			p.ID, p.Name, p.Price.StringFixed(2), p.Category, state)
	}
	return nil
}

// AddProduct collects a fresh draft and creates the product. Validation
// happens locally first; a rejected draft never reaches the backend and the
// entered values are reported back for correction.
func (a *App) AddProduct(ctx context.Context) error {
	draft, err := a.inputDraft(ctx, models.ProductDraft{})
	if err != nil {
		return err
	}
	if err := a.admin.Create(ctx, draft); err != nil {
		a.printAdminErr(ctx, err)
		return err
	}
	fmt.Fprintln(a.out, "Product created.")
	return nil
}

// EditProduct seeds the form from the existing product and submits the
// updated draft. Pressing Enter on a prompt keeps the current value;
// skipping the asset prompts keeps the stored assets.
func (a *App) EditProduct(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.catalog.Product(ctx, id)
	if err != nil {
		a.printErr(ctx, err)
		return err
	}

	draft, err := a.inputDraft(ctx, models.DraftFromProduct(p))
	if err != nil {
		return err
	}
	if err := a.admin.Update(ctx, id, draft); err != nil {
		a.printAdminErr(ctx, err)
		return err
	}
	fmt.Fprintln(a.out, "Product updated.")
	return nil
}

// DeleteProduct removes a product after an explicit confirmation. The
// confirmation lives here; the repository applies the call unconditionally.
func (a *App) DeleteProduct(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}

	if !GetConfirmation(a.reader, fmt.Sprintf("Delete product %s?", id), a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.admin.Delete(ctx, id); err != nil {
		a.printAdminErr(ctx, err)
		return err
	}
	fmt.Fprintln(a.out, "Product deleted.")
	return nil
}

// inputDraft walks the product form. The seed supplies defaults so the same
// flow serves both create (zero seed) and edit (existing product).
func (a *App) inputDraft(ctx context.Context, seed models.ProductDraft) (models.ProductDraft, error) {
	draft := seed

	name, err := GetTextWithDefault(a.reader, "Name", seed.Name, os.Stdout)
	if err != nil {
		return draft, err
	}
	draft.Name = name

	description, err := GetTextWithDefault(a.reader, "Description", seed.Description, os.Stdout)
	if err != nil {
		return draft, err
	}
	draft.Description = description

	price, err := GetTextWithDefault(a.reader, "Price", seed.Price, os.Stdout)
	if err != nil {
		return draft, err
	}
	draft.Price = price

	category, err := GetTextWithDefault(a.reader, "Category", seed.Category, os.Stdout)
	if err != nil {
		return draft, err
	}
	draft.Category = category

	imagePath, err := getSimpleText(a.reader, "Image path (empty to skip)", os.Stdout)
	if err != nil {
		return draft, err
	}
	if imagePath != "" {
		encoded, err := asset.EncodeImage(imagePath)
		if err != nil {
			fmt.Fprintf(a.out, "Cannot read image: %v\n", err)
			return draft, err
		}
		draft.SetImage(encoded)
	}

	filePath, err := getSimpleText(a.reader, "Deliverable path (empty to skip)", os.Stdout)
	if err != nil {
		return draft, err
	}
	if filePath != "" {
		file, err := asset.EncodeFile(filePath)
		if err != nil {
			fmt.Fprintf(a.out, "Cannot read file: %v\n", err)
			return draft, err
		}
		draft.SetFile(file)
	}

	return draft, nil
}

// printAdminErr adds admin-specific messages on top of printErr.
func (a *App) printAdminErr(ctx context.Context, err error) {
	switch {
	case errors.Is(err, admin.ErrAccessDenied):
		fmt.Fprintln(a.out, "Admin access required.")
	case errors.Is(err, admin.ErrValidation):
		fmt.Fprintln(a.out, err.Error())
	default:
		a.printErr(ctx, err)
	}
}
