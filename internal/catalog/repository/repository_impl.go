package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/cotiza/internal/catalog/domain"
	"github.com/smallbiznis/cotiza/pkg/db/option"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, svc *domain.CatalogService) error {
	return db.WithContext(ctx).Create(svc).Error
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, svc *domain.CatalogService) error {
	return db.WithContext(ctx).Save(svc).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.CatalogService, error) {
	var svc domain.CatalogService
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&svc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &svc, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListServiceFilter) ([]*domain.CatalogService, error) {
	var services []*domain.CatalogService
	stmt := db.WithContext(ctx).Model(&domain.CatalogService{})
	if filter.Kind != "" {
		stmt = stmt.Where("kind = ?", filter.Kind)
	}
	if filter.ActiveOnly {
		stmt = stmt.Where("active = ?", true)
	}
	stmt = option.WithOrder("name asc").Apply(stmt)
	err := stmt.Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.CatalogService{}).Error
}
