package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeDuplicateSKU    = "DUPLICATE_SKU"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// DomainError is a business-rule violation caused by client input. The
// message is shown verbatim to the end user, so the wording matters.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrDuplicateSKU    = NewDomainError(ErrCodeDuplicateSKU, "A product with this SKU already exists")
	ErrMissingFields   = NewDomainError(ErrCodeMissingField, "Missing required fields: name, category, price, quantity, sku")
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be a non-negative number")
)
