package models

import "time"

// Every entity carries an application-assigned integer id in the "id" field.
// It is distinct from Mongo's own _id and all lookups key on it.

type Product struct {
	ID          int64     `bson:"id"                    json:"id"`
	Name        string    `bson:"name"                  json:"name"`
	Price       float64   `bson:"price"                 json:"price"`
	Category    string    `bson:"category"              json:"category"`
	Stock       int64     `bson:"stock"                 json:"stock"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Images      []string  `bson:"images,omitempty"      json:"images,omitempty"`
	CreatedAt   time.Time `bson:"createdAt"             json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"             json:"updatedAt"`
}

// OrderItem is a denormalized snapshot of a product at order time,
// not a live reference.
type OrderItem struct {
	ID       int64    `bson:"id"               json:"id"`
	Name     string   `bson:"name"             json:"name"`
	Price    float64  `bson:"price"            json:"price"`
	Quantity int64    `bson:"quantity"         json:"quantity"`
	Images   []string `bson:"images,omitempty" json:"images,omitempty"`
}

type ShippingAddress struct {
	Name    string `bson:"name,omitempty"    json:"name,omitempty"`
	Phone   string `bson:"phone,omitempty"   json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	City    string `bson:"city,omitempty"    json:"city,omitempty"`
	Pincode string `bson:"pincode,omitempty" json:"pincode,omitempty"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID              int64            `bson:"id"                        json:"id"`
	UserID          string           `bson:"userId"                    json:"userId"`
	Items           []OrderItem      `bson:"items"                     json:"items"`
	Total           float64          `bson:"total"                     json:"total"`
	Status          string           `bson:"status"                    json:"status"`
	Date            time.Time        `bson:"date"                      json:"date"`
	ShippingAddress *ShippingAddress `bson:"shippingAddress,omitempty" json:"shippingAddress,omitempty"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           int64  `bson:"id"       json:"id"`
	Name         string `bson:"name"     json:"name"`
	Email        string `bson:"email"    json:"email"`
	PasswordHash string `bson:"password" json:"-"`
	Role         string `bson:"role"     json:"role"`
}
