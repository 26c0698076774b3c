package models

import "time"

const (
	StaffActive   = "active"
	StaffInactive = "inactive"
)

type StaffMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Role      string    `gorm:"type:varchar(50);not null" json:"role"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	Shift     string    `gorm:"type:varchar(50)" json:"shift"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StaffPatch is a partial staff update.
type StaffPatch struct {
	Name   *string `json:"name,omitempty"`
	Role   *string `json:"role,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Shift  *string `json:"shift,omitempty"`
	Status *string `json:"status,omitempty"`
}
