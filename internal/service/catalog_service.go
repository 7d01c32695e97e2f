package service

import (
	"context"
	"fmt"

	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	productRepo repository.ProductRepository
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		validate:    validator.New(),
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// List retrieves products matching the optional filters.
func (s *catalogService) List(ctx context.Context, search, category string) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx, search, category)
	if err != nil {
		s.logger.Error().Err(err).
			Str("search", search).
			Str("category", category).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Str("search", search).
		Str("category", category).
		Msg("listed products")

	return products, nil
}

// Get retrieves a single product by ID.
func (s *catalogService) Get(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Create validates the input and inserts a new product. Validation runs
// before any storage call; duplicate SKUs are left to the storage constraint
// so a concurrent insert of the same SKU cannot slip through a pre-check.
func (s *catalogService) Create(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	if err := s.validate.Struct(in); err != nil {
		s.logger.Debug().Err(err).Msg("product input validation failed")
		return nil, model.ErrMissingFields
	}

	product, err := s.productRepo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Str("sku", product.SKU).
		Msg("product created")

	return product, nil
}

// Replace validates the input and replaces all fields of an existing product.
func (s *catalogService) Replace(ctx context.Context, id int64, in model.ProductInput) (*model.Product, error) {
	if err := s.validate.Struct(in); err != nil {
		s.logger.Debug().Err(err).Int64("product_id", id).Msg("product input validation failed")
		return nil, model.ErrMissingFields
	}

	product, err := s.productRepo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Str("sku", product.SKU).
		Msg("product replaced")

	return product, nil
}

// SetQuantity validates and replaces the quantity of an existing product.
// A missing or negative quantity never reaches storage.
func (s *catalogService) SetQuantity(ctx context.Context, id int64, in model.QuantityInput) (*model.Product, error) {
	if in.Quantity == nil || *in.Quantity < 0 {
		s.logger.Debug().Int64("product_id", id).Msg("invalid quantity input")
		return nil, model.ErrInvalidQuantity
	}

	product, err := s.productRepo.UpdateQuantity(ctx, id, *in.Quantity)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Int32("quantity", product.Quantity).
		Msg("product quantity updated")

	return product, nil
}

// Delete removes a product.
func (s *catalogService) Delete(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")

	return nil
}

// Categories retrieves the distinct category values in use.
func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.productRepo.Categories(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
