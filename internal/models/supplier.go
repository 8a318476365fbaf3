package models

import "time"

// Supplier is a vendor products can name by its unique Name. Contact fields
// are all optional.
type Supplier struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string    `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	ContactPerson string    `json:"contactPerson,omitempty" validate:"omitempty,max=100"`
	Email         string    `json:"email,omitempty" gorm:"index" validate:"omitempty,email"`
	Phone         string    `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address       string    `json:"address,omitempty" validate:"omitempty,max=500"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SupplierUpdate is a partial field set for updates.
type SupplierUpdate struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=100"`
	ContactPerson *string `json:"contactPerson" validate:"omitempty,max=100"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone" validate:"omitempty,max=50"`
	Address       *string `json:"address" validate:"omitempty,max=500"`
}
