package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"stockroom/internal/model"
	"stockroom/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests with optional search and category
// filters. Empty query parameters are treated as absent.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	products, err := h.service.List(r.Context(), search, category)
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Get handles GET /api/products/{id} requests.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Categories handles GET /api/categories requests.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrMissingFields.Message, h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Replace handles PUT /api/products/{id} requests.
func (h *ProductHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	var in model.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrMissingFields.Message, h.logger)
		return
	}

	product, err := h.service.Replace(r.Context(), id, in)
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// SetQuantity handles PATCH /api/products/{id}/quantity requests.
func (h *ProductHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	var in model.QuantityInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrInvalidQuantity.Message, h.logger)
		return
	}

	product, err := h.service.SetQuantity(r.Context(), id, in)
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// productID extracts and parses the {id} path parameter. A non-numeric id
// matches no product, so it is answered with the same 404 a missing row
// gets.
func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, model.ErrProductNotFound.Message, h.logger)
		return 0, false
	}
	return id, true
}

// respondError maps service errors onto HTTP status codes. Domain errors
// carry their own client-facing message; anything else is an infrastructure
// failure surfaced as a 500 with the raw message.
func (h *ProductHandler) respondError(w http.ResponseWriter, err error) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusInternalServerError
		switch domainErr.Code {
		case model.ErrCodeProductNotFound:
			status = http.StatusNotFound
		case model.ErrCodeDuplicateSKU:
			status = http.StatusConflict
		case model.ErrCodeMissingField, model.ErrCodeInvalidQuantity, model.ErrCodeInvalidJSON:
			status = http.StatusBadRequest
		}
		writeError(w, status, domainErr.Message, h.logger)
		return
	}

	h.logger.Error().Err(err).Msg("request failed")
	writeError(w, http.StatusInternalServerError, err.Error(), h.logger)
}
