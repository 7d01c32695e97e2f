package model

// Product represents a single entry in the inventory catalogue. The JSON
// field set is the wire contract consumed by the browser client and must not
// grow or shrink.
type Product struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Category    string  `json:"category" db:"category"`
	Price       float64 `json:"price" db:"price"`
	Quantity    int32   `json:"quantity" db:"quantity"`
	SKU         string  `json:"sku" db:"sku"`
	Description string  `json:"description" db:"description"`
}

// ProductInput represents the request payload for creating or replacing a
// product. Price and Quantity are pointers so an absent field can be told
// apart from a legitimate zero.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Quantity    *int32   `json:"quantity" validate:"required,gte=0"`
	SKU         string   `json:"sku" validate:"required"`
	Description string   `json:"description"`
}

// QuantityInput represents the request payload for a quantity-only update.
type QuantityInput struct {
	Quantity *int32 `json:"quantity"`
}
