package models

import "time"

// Item statuses track preparation of a single line independently of the
// order-level status.
const (
	ItemPlaced    = "placed"
	ItemPreparing = "preparing"
	ItemServed    = "served"
	ItemCancelled = "cancelled"
)

// OrderItem is one line within an order. Price and Name are denormalized
// from the menu item for display and total arithmetic.
type OrderItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"order_id"`
	MenuItemID uint      `gorm:"not null" json:"menu_item_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Status     string    `gorm:"type:varchar(20);not null;default:'placed'" json:"status"`
	Notes      string    `gorm:"type:text" json:"notes"`
	Price      float64   `gorm:"type:decimal(10,2)" json:"price,omitempty"`
	Name       string    `gorm:"type:varchar(255)" json:"name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Editable reports whether quantity and status edits are still offered for
// the item. Served and cancelled lines are display-only.
func (i *OrderItem) Editable() bool {
	return i.Status == ItemPlaced || i.Status == ItemPreparing
}

// OrderItemPatch is a partial update of one line: status and/or quantity.
type OrderItemPatch struct {
	Quantity *int    `json:"quantity,omitempty"`
	Status   *string `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}
