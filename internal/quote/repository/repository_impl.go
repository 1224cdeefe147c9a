package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/cotiza/internal/quote/domain"
	"github.com/smallbiznis/cotiza/pkg/db/option"
	"github.com/smallbiznis/cotiza/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, snapshot *domain.PackageSnapshot) error {
	return db.WithContext(ctx).Create(snapshot).Error
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, snapshot *domain.PackageSnapshot) error {
	return db.WithContext(ctx).Save(snapshot).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.PackageSnapshot, error) {
	var snapshot domain.PackageSnapshot
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListPackageFilter, page pagination.Pagination) ([]*domain.PackageSnapshot, error) {
	var snapshots []*domain.PackageSnapshot
	stmt := db.WithContext(ctx).Model(&domain.PackageSnapshot{})
	if filter.Name != "" {
		stmt = stmt.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("id desc").
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.PackageSnapshot{}).Error
}
