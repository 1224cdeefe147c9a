package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// ServiceKind places a catalog entry in the package form: baseline
// services seed every package, optional ones are added selectively.
type ServiceKind string

const (
	KindBase     ServiceKind = "base"
	KindOptional ServiceKind = "optional"
)

// CatalogService is a reusable service template the package form is
// seeded from. The price and month split are defaults only; each
// snapshot stores its own copy of whatever the user ends up with.
type CatalogService struct {
	ID                snowflake.ID `gorm:"primaryKey" json:"id"`
	Name              string       `gorm:"not null" json:"name"`
	Kind              ServiceKind  `gorm:"type:text;not null;index" json:"kind"`
	MonthlyPrice      float64      `gorm:"not null" json:"monthly_price"`
	Frequency         string       `gorm:"type:text;not null;default:monthly" json:"frequency"`
	DefaultFreeMonths int          `gorm:"not null;default:0" json:"default_free_months"`
	DefaultPaidMonths int          `gorm:"not null;default:12" json:"default_paid_months"`
	Active            bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt         time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (CatalogService) TableName() string { return "catalog_services" }
