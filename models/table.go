package models

import "time"

// Table statuses as they appear on the wire.
const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
	TableCleaning  = "cleaning"
)

// Table is a physical seating unit. MergedWith is non-empty on the main
// table of a merge group; partner tables reference the main table back and
// are individually marked occupied.
type Table struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	TableNumber    int       `gorm:"not null" json:"table_number"`
	Capacity       int       `gorm:"not null" json:"capacity"`
	Status         string    `gorm:"type:varchar(50);not null;default:'available'" json:"status"`
	CurrentOrderID *uint     `json:"current_order_id,omitempty"`
	MergedWith     []uint    `gorm:"serializer:json" json:"merged_with,omitempty"`
	SplitFrom      *uint     `json:"split_from,omitempty"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

// TablePatch is a partial table update. Nil fields are left untouched by
// the server. ClearRefs forces current_order_id/merged_with/split_from to
// empty, which a nil-means-unchanged patch cannot otherwise express.
type TablePatch struct {
	TableNumber    *int    `json:"table_number,omitempty"`
	Capacity       *int    `json:"capacity,omitempty"`
	Status         *string `json:"status,omitempty"`
	CurrentOrderID *uint   `json:"current_order_id,omitempty"`
	MergedWith     []uint  `json:"merged_with,omitempty"`
	SplitFrom      *uint   `json:"split_from,omitempty"`
	ClearRefs      bool    `json:"clear_refs,omitempty"`
}
