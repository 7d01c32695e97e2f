package service

import (
	"context"

	"stockroom/internal/model"
)

// CatalogService defines operations over the product catalogue.
type CatalogService interface {
	// List retrieves products matching the optional search term and
	// category filter. An empty result is valid, not an error.
	List(ctx context.Context, search, category string) ([]model.Product, error)

	// Get retrieves a single product by ID.
	Get(ctx context.Context, id int64) (*model.Product, error)

	// Create validates the input and inserts a new product.
	Create(ctx context.Context, in model.ProductInput) (*model.Product, error)

	// Replace validates the input and replaces all mutable fields of an
	// existing product.
	Replace(ctx context.Context, id int64, in model.ProductInput) (*model.Product, error)

	// SetQuantity validates and replaces the quantity of an existing
	// product.
	SetQuantity(ctx context.Context, id int64, in model.QuantityInput) (*model.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id int64) error

	// Categories retrieves the distinct category values in use.
	Categories(ctx context.Context) ([]string, error)
}
