package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the order lifecycle state
type OrderStatus int

const (
	OrderStatusCreated OrderStatus = iota
	OrderStatusPaid
	OrderStatusShipped
	OrderStatusCompleted
	OrderStatusCancelled
)

// String returns the string representation of the order status
func (s OrderStatus) String() string {
	switch s {
	case OrderStatusCreated:
		return "created"
	case OrderStatusPaid:
		return "paid"
	case OrderStatusShipped:
		return "shipped"
	case OrderStatusCompleted:
		return "completed"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsValid checks whether the status is a known lifecycle state
func (s OrderStatus) IsValid() bool {
	return s >= OrderStatusCreated && s <= OrderStatusCancelled
}

// ErrOrderNotFound is returned when an order id does not exist
var ErrOrderNotFound = errors.New("order not found")

// Order is the order aggregate root
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderNumber     string      `gorm:"size:64;uniqueIndex;not null" json:"order_number"`
	UserID          uint        `gorm:"index;not null" json:"user_id"`
	Status          OrderStatus `gorm:"type:smallint;default:0;index" json:"status"`
	TotalAmount     float64     `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	ReceiverName    string      `gorm:"size:100" json:"receiver_name"`
	ReceiverPhone   string      `gorm:"size:30" json:"receiver_phone"`
	ReceiverAddress string      `gorm:"size:255" json:"receiver_address"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one purchased line of an order
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index;not null" json:"order_id"`
	ProductID   uint    `gorm:"not null" json:"product_id"`
	SkuCode     string  `gorm:"size:64" json:"sku_code"`
	ProductName string  `gorm:"size:200" json:"product_name"`
	UnitPrice   float64 `gorm:"type:decimal(12,2)" json:"unit_price"`
	Quantity    int     `gorm:"not null" json:"quantity"`
}

// TableName specifies the table name for OrderItem
func (OrderItem) TableName() string {
	return "order_items"
}
