package transport

import (
	"time"

	"shopapi/internal/models"
)

// Required fields mirror what the store schema used to enforce; pointer
// fields distinguish "absent" from a zero value.

type CreateProductRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Price       *float64 `json:"price"       validate:"required"`
	Category    string   `json:"category"    validate:"required"`
	Stock       *int64   `json:"stock"       validate:"required,gte=0"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Stock       *int64   `json:"stock"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
}

type CreateOrderRequest struct {
	UserID          string                  `json:"userId"`
	Items           []models.OrderItem      `json:"items"`
	Total           *float64                `json:"total" validate:"required"`
	Status          string                  `json:"status" validate:"omitempty,oneof=pending shipped delivered cancelled"`
	Date            *time.Time              `json:"date"`
	ShippingAddress *models.ShippingAddress `json:"shippingAddress"`
}

type UpdateOrderRequest struct {
	UserID          *string                 `json:"userId"`
	Items           []models.OrderItem      `json:"items"`
	Total           *float64                `json:"total"`
	Status          *string                 `json:"status" validate:"omitempty,oneof=pending shipped delivered cancelled"`
	ShippingAddress *models.ShippingAddress `json:"shippingAddress"`
}

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both register and login. The user view never
// serializes the password hash.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
