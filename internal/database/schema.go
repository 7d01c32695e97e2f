package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const schema = `
	CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		price DECIMAL(10,2) NOT NULL CHECK (price >= 0),
		quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		sku TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
`

// seedProduct mirrors the column order of the seed INSERT.
type seedProduct struct {
	name        string
	category    string
	price       float64
	quantity    int32
	sku         string
	description string
}

var seedProducts = []seedProduct{
	{"Apple iPhone 15", "Electronics", 999.99, 25, "SKU-001", "Latest Apple smartphone with A16 chip"},
	{"Samsung 4K TV 55\"", "Electronics", 649.99, 12, "SKU-002", "55-inch 4K UHD Smart TV"},
	{"Nike Air Max 270", "Footwear", 149.99, 40, "SKU-003", "Comfortable running shoes with Air cushioning"},
	{"Levi's 501 Jeans", "Clothing", 59.99, 60, "SKU-004", "Classic straight-fit denim jeans"},
	{"KitchenAid Stand Mixer", "Appliances", 379.99, 8, "SKU-005", "Professional 5-quart stand mixer"},
	{"The Great Gatsby", "Books", 12.99, 100, "SKU-006", "Classic novel by F. Scott Fitzgerald"},
	{"Yoga Mat Premium", "Sports", 34.99, 55, "SKU-007", "Non-slip 6mm thick yoga mat"},
	{"Nespresso Vertuo Coffee Machine", "Appliances", 199.99, 18, "SKU-008", "Single-serve coffee machine with 5 cup sizes"},
	{"Sony WH-1000XM5 Headphones", "Electronics", 349.99, 20, "SKU-009", "Industry-leading noise canceling headphones"},
	{"Adidas Ultraboost 22", "Footwear", 189.99, 35, "SKU-010", "High-performance running shoes with Boost midsole"},
	{"Instant Pot Duo 7-in-1", "Appliances", 89.99, 30, "SKU-011", "Multi-use pressure cooker, slow cooker, rice cooker"},
	{"Patagonia Fleece Jacket", "Clothing", 119.99, 22, "SKU-012", "Sustainable fleece jacket for outdoor activities"},
	{"LEGO Technic Set", "Toys", 79.99, 45, "SKU-013", "Advanced LEGO building set for ages 10+"},
	{"Dyson V15 Vacuum", "Appliances", 699.99, 7, "SKU-014", "Cordless vacuum with laser dust detection"},
	{"Canon EOS R50 Camera", "Electronics", 679.99, 10, "SKU-015", "Mirrorless camera with 24.2 MP sensor"},
	{"Protein Powder Whey", "Health", 49.99, 80, "SKU-016", "Chocolate flavored whey protein, 2.27kg"},
	{"Kindle Paperwhite", "Electronics", 139.99, 28, "SKU-017", "E-reader with 6.8\" display and adjustable warm light"},
	{"Cast Iron Skillet 12\"", "Kitchen", 39.99, 50, "SKU-018", "Pre-seasoned cast iron skillet for even heat distribution"},
	{"Resistance Bands Set", "Sports", 24.99, 90, "SKU-019", "Set of 5 resistance bands for home workouts"},
	{"Scented Candle Collection", "Home Decor", 29.99, 70, "SKU-020", "Set of 3 soy wax scented candles, 40-hour burn time"},
}

// Migrate creates the products table and its indexes. Safe to run on every
// startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Seed populates an empty products table with the fixed demo catalogue. The
// emptiness check and the batch insert run inside one transaction so a crash
// mid-seed cannot leave a half-seeded table behind; a non-empty table is
// never reseeded. Runs at startup before the listener is bound.
func Seed(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var count int
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	if count > 0 {
		logger.Debug().Int("count", count).Msg("products table already populated, skipping seed")
		return nil
	}

	query := `
		INSERT INTO products (name, category, price, quantity, sku, description)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	batch := &pgx.Batch{}
	for _, p := range seedProducts {
		batch.Queue(query, p.name, p.category, p.price, p.quantity, p.sku, p.description)
	}

	results := tx.SendBatch(ctx, batch)
	for range seedProducts {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert seed product: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close seed batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	logger.Info().Int("count", len(seedProducts)).Msg("seeded products table")

	return nil
}
