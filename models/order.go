package models

import "time"

// Order statuses. Paid and cancelled are terminal.
const (
	OrderPlaced    = "placed"
	OrderPreparing = "preparing"
	OrderServed    = "served"
	OrderCancelled = "cancelled"
	OrderPaid      = "paid"
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	CustomerID  uint        `json:"customer_id"`
	TableID     uint        `gorm:"index" json:"table_id"`
	StaffID     uint        `json:"staff_id"`
	OrderTime   time.Time   `json:"order_time"`
	Status      string      `gorm:"type:varchar(20);not null;default:'placed'" json:"status"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	TotalAmount float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}

// ComputeTotal derives the order total from its item list. Cancelled items
// do not count towards the amount owed.
func (o *Order) ComputeTotal() float64 {
	return ItemsTotal(o.Items)
}

// IsActive reports whether the order still occupies its table, i.e. it has
// not reached a terminal state.
func (o *Order) IsActive() bool {
	return o.Status != OrderPaid && o.Status != OrderCancelled
}

// Payable reports whether payment may be initiated for the order. Only a
// fully served order can be paid.
func (o *Order) Payable() bool {
	return o.Status == OrderServed
}

// ItemsTotal sums price x quantity over non-cancelled items.
func ItemsTotal(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		if it.Status == ItemCancelled {
			continue
		}
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// OrderPatch is a partial order update. Items, when non-nil, replaces the
// full item list and must be accompanied by the recomputed total. The
// items key is never omitted so an empty replacement list still reaches
// the server as [] rather than vanishing under omitempty.
type OrderPatch struct {
	Status      *string     `json:"status,omitempty"`
	Items       []OrderItem `json:"items"`
	TotalAmount *float64    `json:"total_amount,omitempty"`
}
