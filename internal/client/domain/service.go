package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/cotiza/pkg/db/pagination"
)

type CreateClientRequest struct {
	Name    string
	Email   string
	Company string
	TaxID   string
	Phone   string
}

type UpdateClientRequest struct {
	ID string
	CreateClientRequest
}

type ListClientRequest struct {
	PageToken string
	PageSize  int
	Name      string
	Email     string
}

type ListClientResponse struct {
	pagination.PageInfo
	Clients []Client `json:"clients"`
}

type Service interface {
	Create(context.Context, CreateClientRequest) (Client, error)
	Update(context.Context, UpdateClientRequest) (Client, error)
	GetByID(context.Context, string) (Client, error)
	List(context.Context, ListClientRequest) (ListClientResponse, error)
	Delete(context.Context, string) error
}

var (
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidEmail = errors.New("invalid_email")
	ErrInvalidID    = errors.New("invalid_id")
	ErrNotFound     = errors.New("not_found")
)
