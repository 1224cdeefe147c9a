package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/cotiza/internal/pricing"
	"github.com/smallbiznis/cotiza/pkg/db/pagination"
)

// ServiceInput is one recurring service line as submitted by the form
// layer. Months are normalized and percentages clamped before the
// engine ever sees them.
type ServiceInput struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	MonthlyPrice float64 `json:"monthly_price"`
	FreeMonths   int     `json:"free_months"`
	PaidMonths   int     `json:"paid_months"`
	Frequency    string  `json:"frequency"`
}

type PaymentOptionInput struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

type PackageInput struct {
	Name             string                 `json:"name"`
	ClientID         string                 `json:"client_id"`
	DevelopmentCost  float64                `json:"development_cost"`
	BaseServices     []ServiceInput         `json:"base_services"`
	OptionalServices []ServiceInput         `json:"optional_services"`
	Discounts        pricing.DiscountConfig `json:"discounts"`
	PaymentOptions   []PaymentOptionInput   `json:"payment_options"`
}

type UpdatePackageRequest struct {
	ID string
	PackageInput
}

type ListPackageRequest struct {
	PageToken string
	PageSize  int
	Name      string
}

type ListPackageResponse struct {
	pagination.PageInfo
	Packages []PackageSnapshot `json:"packages"`
}

// PreviewResponse carries everything the live preview and the PDF
// render from. Both callers receive the identical numbers because
// both go through the same computation.
type PreviewResponse struct {
	Breakdown  pricing.Breakdown      `json:"breakdown"`
	Projection pricing.CostProjection `json:"projection"`
}

type Service interface {
	Create(context.Context, PackageInput) (PackageSnapshot, error)
	Update(context.Context, UpdatePackageRequest) (PackageSnapshot, error)
	GetByID(context.Context, string) (PackageSnapshot, error)
	List(context.Context, ListPackageRequest) (ListPackageResponse, error)
	Delete(context.Context, string) error

	// Preview validates and normalizes the input, then runs the
	// pricing engine without persisting anything.
	Preview(context.Context, PackageInput) (PreviewResponse, error)
	// Breakdown recomputes the full breakdown for a stored snapshot.
	Breakdown(context.Context, string) (PreviewResponse, error)
}

var (
	ErrInvalidID              = errors.New("invalid_id")
	ErrInvalidName            = errors.New("invalid_name")
	ErrInvalidClient          = errors.New("invalid_client")
	ErrInvalidDevelopmentCost = errors.New("invalid_development_cost")
	ErrInvalidServiceName     = errors.New("invalid_service_name")
	ErrInvalidServicePrice    = errors.New("invalid_service_price")
	ErrInvalidDiscountMode    = errors.New("invalid_discount_mode")
	ErrInvalidPaymentOptions  = errors.New("invalid_payment_options")
	ErrNotFound               = errors.New("not_found")
)
