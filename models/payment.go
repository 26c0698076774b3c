package models

import "time"

// Payment methods and statuses.
const (
	PaymentCash = "cash"
	PaymentCard = "card"

	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment records a settled order. Created once per completed order;
// creation is followed by marking the order paid and its table available.
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderID       uint      `gorm:"not null;index" json:"order_id"`
	AmountPaid    float64   `gorm:"type:decimal(10,2);not null" json:"amount_paid"`
	PaymentMethod string    `gorm:"type:varchar(20);not null;default:'cash'" json:"payment_method"`
	PaidAt        time.Time `json:"paid_at"`
	Status        string    `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
