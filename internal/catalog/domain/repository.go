package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListServiceFilter struct {
	Kind       ServiceKind
	ActiveOnly bool
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, svc *CatalogService) error
	Save(ctx context.Context, db *gorm.DB, svc *CatalogService) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*CatalogService, error)
	List(ctx context.Context, db *gorm.DB, filter ListServiceFilter) ([]*CatalogService, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
