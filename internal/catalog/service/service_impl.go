package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/cotiza/internal/catalog/domain"
	"github.com/smallbiznis/cotiza/internal/pricing"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("catalog.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.UpsertServiceRequest) (domain.CatalogService, error) {
	svc, err := build(req)
	if err != nil {
		return domain.CatalogService{}, err
	}

	now := time.Now().UTC()
	svc.ID = s.genID.Generate()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if err := s.repo.Insert(ctx, s.db, &svc); err != nil {
		return domain.CatalogService{}, err
	}
	return svc, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateServiceRequest) (domain.CatalogService, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.CatalogService{}, domain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.CatalogService{}, err
	}
	if existing == nil {
		return domain.CatalogService{}, domain.ErrNotFound
	}

	svc, err := build(req.UpsertServiceRequest)
	if err != nil {
		return domain.CatalogService{}, err
	}

	svc.ID = existing.ID
	svc.CreatedAt = existing.CreatedAt
	svc.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, s.db, &svc); err != nil {
		return domain.CatalogService{}, err
	}
	return svc, nil
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.CatalogService, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.CatalogService{}, domain.ErrInvalidID
	}
	svc, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.CatalogService{}, err
	}
	if svc == nil {
		return domain.CatalogService{}, domain.ErrNotFound
	}
	return *svc, nil
}

func (s *Service) List(ctx context.Context, req domain.ListServiceRequest) ([]domain.CatalogService, error) {
	filter := domain.ListServiceFilter{ActiveOnly: req.ActiveOnly}
	switch strings.TrimSpace(req.Kind) {
	case "":
	case string(domain.KindBase):
		filter.Kind = domain.KindBase
	case string(domain.KindOptional):
		filter.Kind = domain.KindOptional
	default:
		return nil, domain.ErrInvalidKind
	}

	rows, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	services := make([]domain.CatalogService, 0, len(rows))
	for _, row := range rows {
		services = append(services, *row)
	}
	return services, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return domain.ErrInvalidID
	}
	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}

func build(req domain.UpsertServiceRequest) (domain.CatalogService, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CatalogService{}, domain.ErrInvalidName
	}

	var kind domain.ServiceKind
	switch strings.TrimSpace(req.Kind) {
	case string(domain.KindBase):
		kind = domain.KindBase
	case string(domain.KindOptional):
		kind = domain.KindOptional
	default:
		return domain.CatalogService{}, domain.ErrInvalidKind
	}

	if req.MonthlyPrice <= 0 {
		return domain.CatalogService{}, domain.ErrInvalidPrice
	}

	frequency := strings.ToLower(strings.TrimSpace(req.Frequency))
	if frequency != string(pricing.BillingAnnual) {
		frequency = string(pricing.BillingMonthly)
	}

	free, paid := pricing.NormalizeMonths(req.FreeMonths, req.PaidMonths)

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return domain.CatalogService{
		Name:              name,
		Kind:              kind,
		MonthlyPrice:      req.MonthlyPrice,
		Frequency:         frequency,
		DefaultFreeMonths: free,
		DefaultPaidMonths: paid,
		Active:            active,
	}, nil
}

func parseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}
