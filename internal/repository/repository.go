package repository

import (
	"context"

	"stockroom/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves products matching the optional search term (substring
	// of name or SKU, case-insensitive) and the optional exact category,
	// ordered by name ascending.
	List(ctx context.Context, search, category string) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create inserts a new product and returns the stored row.
	Create(ctx context.Context, in model.ProductInput) (*model.Product, error)

	// Update replaces all mutable fields of a product and returns the
	// stored row.
	Update(ctx context.Context, id int64, in model.ProductInput) (*model.Product, error)

	// UpdateQuantity replaces only the quantity of a product. The caller is
	// responsible for rejecting negative values first.
	UpdateQuantity(ctx context.Context, id int64, quantity int32) (*model.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id int64) error

	// Categories retrieves the distinct category values across all
	// products, ordered ascending.
	Categories(ctx context.Context) ([]string, error)
}
