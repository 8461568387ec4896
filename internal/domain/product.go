package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry backed by the products table.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id" yaml:"-"`
	Name        string          `gorm:"size:100;not null" json:"name" yaml:"name"`
	Description string          `gorm:"type:text" json:"description" yaml:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price" yaml:"price"`
	CreatedAt   time.Time       `json:"created_at" yaml:"-"`
	UpdatedAt   time.Time       `json:"updated_at" yaml:"-"`
}

// NewProduct builds an unsaved Product. Values are taken as given.
func NewProduct(name, description string, price decimal.Decimal) Product {
	return Product{Name: name, Description: description, Price: price}
}

func (p Product) String() string { return p.Name }
