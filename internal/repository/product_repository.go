package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stockroom/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = "id, name, category, price, quantity, sku, description"

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// List retrieves products matching the optional filters, ordered by name
// ascending. Ordering follows the collation of the underlying database.
func (r *productRepository) List(ctx context.Context, search, category string) ([]model.Product, error) {
	var clauses []string
	var args []any

	if search != "" {
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR sku ILIKE $%d)", len(args)+1, len(args)+2))
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}
	if category != "" {
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, category)
	}

	query := "SELECT " + productColumns + " FROM products"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY name ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).
			Str("search", search).
			Str("category", category).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE id = $1"

	var p model.Product
	err := scanProduct(r.pool.QueryRow(ctx, query, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, model.ErrProductNotFound
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Create inserts a new product. The SKU uniqueness constraint is the sole
// arbiter of duplicates; there is no pre-check that could race with a
// concurrent insert.
func (r *productRepository) Create(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	query := `
		INSERT INTO products (name, category, price, quantity, sku, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + productColumns

	var p model.Product
	err := scanProduct(
		r.pool.QueryRow(ctx, query, in.Name, in.Category, *in.Price, *in.Quantity, in.SKU, in.Description),
		&p,
	)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Debug().Str("sku", in.SKU).Msg("duplicate SKU on insert")
			return nil, model.ErrDuplicateSKU
		}
		r.logger.Error().Err(err).Str("sku", in.SKU).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().Int64("product_id", p.ID).Str("sku", p.SKU).Msg("product created")

	return &p, nil
}

// Update replaces all mutable fields of a product.
func (r *productRepository) Update(ctx context.Context, id int64, in model.ProductInput) (*model.Product, error) {
	query := `
		UPDATE products
		SET name = $1, category = $2, price = $3, quantity = $4, sku = $5, description = $6
		WHERE id = $7
		RETURNING ` + productColumns

	var p model.Product
	err := scanProduct(
		r.pool.QueryRow(ctx, query, in.Name, in.Category, *in.Price, *in.Quantity, in.SKU, in.Description, id),
		&p,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found for update")
			return nil, model.ErrProductNotFound
		}
		if isUniqueViolation(err) {
			r.logger.Debug().Int64("product_id", id).Str("sku", in.SKU).Msg("duplicate SKU on update")
			return nil, model.ErrDuplicateSKU
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &p, nil
}

// UpdateQuantity replaces only the quantity of a product.
func (r *productRepository) UpdateQuantity(ctx context.Context, id int64, quantity int32) (*model.Product, error) {
	query := `
		UPDATE products
		SET quantity = $1
		WHERE id = $2
		RETURNING ` + productColumns

	var p model.Product
	err := scanProduct(r.pool.QueryRow(ctx, query, quantity, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found for quantity update")
			return nil, model.ErrProductNotFound
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update quantity")
		return nil, fmt.Errorf("failed to update quantity: %w", err)
	}

	return &p, nil
}

// Delete removes a product.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Int64("product_id", id).Msg("product not found for delete")
		return model.ErrProductNotFound
	}

	return nil
}

// Categories retrieves the distinct category values across all products.
// Categories are a projection over current rows, never a stored entity.
func (r *productRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, "SELECT DISTINCT category FROM products ORDER BY category ASC")
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// scanProduct scans a product row in productColumns order.
func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Quantity, &p.SKU, &p.Description)
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
