package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/cotiza/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListPackageFilter struct {
	Name string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, snapshot *PackageSnapshot) error
	Save(ctx context.Context, db *gorm.DB, snapshot *PackageSnapshot) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*PackageSnapshot, error)
	List(ctx context.Context, db *gorm.DB, filter ListPackageFilter, page pagination.Pagination) ([]*PackageSnapshot, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
