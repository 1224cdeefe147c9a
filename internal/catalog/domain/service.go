package domain

import (
	"context"
	"errors"
)

type UpsertServiceRequest struct {
	Name         string
	Kind         string
	MonthlyPrice float64
	Frequency    string
	FreeMonths   int
	PaidMonths   int
	Active       *bool
}

type UpdateServiceRequest struct {
	ID string
	UpsertServiceRequest
}

type ListServiceRequest struct {
	Kind       string
	ActiveOnly bool
}

type Service interface {
	Create(context.Context, UpsertServiceRequest) (CatalogService, error)
	Update(context.Context, UpdateServiceRequest) (CatalogService, error)
	GetByID(context.Context, string) (CatalogService, error)
	List(context.Context, ListServiceRequest) ([]CatalogService, error)
	Delete(context.Context, string) error
}

var (
	ErrInvalidID    = errors.New("invalid_id")
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidKind  = errors.New("invalid_kind")
	ErrInvalidPrice = errors.New("invalid_price")
	ErrNotFound     = errors.New("not_found")
)
