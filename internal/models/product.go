package models

import "time"

// Product represents a single inventory item. Category and Supplier are
// free-text labels matched against Category.Name / Supplier.Name in the UI;
// nothing at the storage layer keeps them in sync.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	Description string    `json:"description" validate:"required,max=500"`
	Price       float64   `json:"price" validate:"gte=0"`
	Stock       int       `json:"stock" validate:"gte=0"`
	MinStock    int       `json:"minStock" validate:"gte=0"`
	Category    string    `json:"category" gorm:"index" validate:"required"`
	Barcode     string    `json:"barcode,omitempty" gorm:"index" validate:"omitempty,max=100"`
	Supplier    string    `json:"supplier,omitempty" validate:"omitempty,max=100"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductUpdate is a partial field set for updates. Nil fields are left
// untouched on the stored record.
type ProductUpdate struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	MinStock    *int     `json:"minStock" validate:"omitempty,gte=0"`
	Category    *string  `json:"category" validate:"omitnil,min=1"`
	Barcode     *string  `json:"barcode" validate:"omitempty,max=100"`
	Supplier    *string  `json:"supplier" validate:"omitempty,max=100"`
}

// ProductStats is the point-in-time summary over the whole product collection.
type ProductStats struct {
	Total      int      `json:"total"`
	LowStock   int      `json:"lowStock"`
	OutOfStock int      `json:"outOfStock"`
	TotalValue float64  `json:"totalValue"`
	Categories []string `json:"categories"`
}
