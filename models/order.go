package models

import "time"

const (
	PaymentMethodCash   = "Cash"
	PaymentMethodStripe = "Stripe"

	OrderPending    = "Pending"
	OrderInProgress = "In Progress"
	OrderRejected   = "Rejected"

	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"
)

// Order keeps Status (fulfillment, admin-controlled) and PaymentStatus
// (webhook-controlled) as independent axes. The only coupling is on a
// failed payment, which also rejects the order.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	User            *User       `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	TotalPrice      float64     `gorm:"type:decimal(10,2);not null" json:"total_price"`
	CustomerName    string      `gorm:"type:varchar(100);not null" json:"customer_name"`
	Address         string      `gorm:"type:varchar(255);not null" json:"address"`
	Phone           string      `gorm:"type:varchar(30);not null" json:"phone"`
	OrderNotes      string      `gorm:"type:text" json:"order_notes"`
	PaymentMethod   string      `gorm:"type:varchar(10);not null" json:"payment_method"`
	Status          string      `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	PaymentStatus   string      `gorm:"type:varchar(10);not null;default:'Pending'" json:"payment_status"`
	StripeSessionID string      `gorm:"type:varchar(255)" json:"stripe_session_id,omitempty"`
	CreatedAt       time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"not null" json:"updated_at"`
}

// OrderItem is a snapshot of name and price at order time, decoupled
// from later catalog edits. MenuItemID is kept for reference only.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    uint    `gorm:"not null;index" json:"order_id"`
	MenuItemID uint    `gorm:"not null" json:"menu_item_id"`
	Name       string  `gorm:"type:varchar(255);not null" json:"name"`
	Price      float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity   int     `gorm:"not null" json:"quantity"`
}
