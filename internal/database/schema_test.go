package database

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	})

	return pool
}

func countProducts(t *testing.T, pool *pgxpool.Pool) int {
	t.Helper()
	var count int
	require.NoError(t, pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM products").Scan(&count))
	return count
}

func TestMigrate_Idempotent(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, pool))
	require.NoError(t, Migrate(ctx, pool))
}

func TestSeed(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	require.NoError(t, Migrate(ctx, pool))

	t.Run("Populates an empty table", func(t *testing.T) {
		require.NoError(t, Seed(ctx, pool, logger))
		assert.Equal(t, len(seedProducts), countProducts(t, pool))
	})

	t.Run("Never reseeds a populated table", func(t *testing.T) {
		require.NoError(t, Seed(ctx, pool, logger))
		assert.Equal(t, len(seedProducts), countProducts(t, pool))
	})

	t.Run("Skips a table with unrelated rows", func(t *testing.T) {
		_, err := pool.Exec(ctx, "DELETE FROM products")
		require.NoError(t, err)
		_, err = pool.Exec(ctx,
			"INSERT INTO products (name, category, price, quantity, sku) VALUES ('Widget', 'Misc', 1.00, 1, 'W-001')")
		require.NoError(t, err)

		require.NoError(t, Seed(ctx, pool, logger))
		assert.Equal(t, 1, countProducts(t, pool))
	})

	t.Run("Seed rows carry unique SKUs and sane values", func(t *testing.T) {
		seen := make(map[string]bool, len(seedProducts))
		for _, p := range seedProducts {
			assert.False(t, seen[p.sku], "duplicate seed sku %s", p.sku)
			seen[p.sku] = true
			assert.NotEmpty(t, p.name)
			assert.NotEmpty(t, p.category)
			assert.GreaterOrEqual(t, p.price, 0.0)
			assert.GreaterOrEqual(t, p.quantity, int32(0))
		}
	})
}
