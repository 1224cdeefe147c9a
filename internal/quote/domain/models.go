package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/cotiza/internal/pricing"
	"gorm.io/datatypes"
)

// PaymentOption is a named share of the total offered to the client
// (e.g. "signing" 40 / "delivery" 60). Shares are informational for
// pricing but must sum to 100 when present.
type PaymentOption struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// PackageSnapshot is a saved package configuration plus its computed
// headline costs. A snapshot is a value object: every edit rewrites
// the whole document and re-stores the derived costs, so list views
// and KPI queries never re-run the engine.
type PackageSnapshot struct {
	ID       snowflake.ID  `gorm:"primaryKey" json:"id"`
	ClientID *snowflake.ID `gorm:"index" json:"client_id,omitempty"`
	Name     string        `gorm:"not null" json:"name"`

	DevelopmentCost float64 `gorm:"not null" json:"development_cost"`

	BaseServices     datatypes.JSONType[[]pricing.RecurringService] `gorm:"type:jsonb;not null" json:"base_services"`
	OptionalServices datatypes.JSONType[[]pricing.RecurringService] `gorm:"type:jsonb;not null" json:"optional_services"`
	Discounts        datatypes.JSONType[pricing.DiscountConfig]     `gorm:"type:jsonb;not null" json:"discounts"`
	PaymentOptions   datatypes.JSONType[[]PaymentOption]            `gorm:"type:jsonb;not null" json:"payment_options"`

	// Recomputed and stored on every save, never lazily at read time.
	InitialCost float64 `gorm:"not null" json:"initial_cost"`
	YearOneCost float64 `gorm:"not null" json:"year_one_cost"`
	YearTwoCost float64 `gorm:"not null" json:"year_two_cost"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (PackageSnapshot) TableName() string { return "package_snapshots" }

// PricingPackage rebuilds the pure engine input from the stored
// document.
func (p *PackageSnapshot) PricingPackage() pricing.Package {
	return pricing.Package{
		Name:             p.Name,
		DevelopmentCost:  p.DevelopmentCost,
		BaseServices:     p.BaseServices.Data(),
		OptionalServices: p.OptionalServices.Data(),
		Discounts:        p.Discounts.Data(),
	}
}
