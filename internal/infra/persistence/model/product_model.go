package model

import (
	"time"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uint64 `gorm:"column:pid;primaryKey;autoIncrement"`
	Name        string `gorm:"column:pname;type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	Price       float64
	Stock       int
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
