package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/cotiza/internal/pricing"
	"github.com/smallbiznis/cotiza/internal/quote/domain"
	"github.com/smallbiznis/cotiza/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// paymentShareTolerance absorbs float drift when checking that payment
// option shares sum to 100.
const paymentShareTolerance = 0.001

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
		log:   p.Log.Named("quote.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.PackageInput) (domain.PackageSnapshot, error) {
	pkg, options, clientID, err := s.normalizeInput(req)
	if err != nil {
		return domain.PackageSnapshot{}, err
	}

	now := time.Now().UTC()
	snapshot := buildSnapshot(s.genID.Generate(), clientID, pkg, options)
	snapshot.CreatedAt = now
	snapshot.UpdatedAt = now

	if err := s.repo.Insert(ctx, s.db, &snapshot); err != nil {
		return domain.PackageSnapshot{}, err
	}

	s.log.Info("package snapshot created",
		zap.String("package_id", snapshot.ID.String()),
		zap.String("name", snapshot.Name),
	)
	return snapshot, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdatePackageRequest) (domain.PackageSnapshot, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.PackageSnapshot{}, domain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.PackageSnapshot{}, err
	}
	if existing == nil {
		return domain.PackageSnapshot{}, domain.ErrNotFound
	}

	pkg, options, clientID, err := s.normalizeInput(req.PackageInput)
	if err != nil {
		return domain.PackageSnapshot{}, err
	}

	// A snapshot is copied wholesale on edit; only identity and the
	// creation timestamp survive from the stored row.
	snapshot := buildSnapshot(existing.ID, clientID, pkg, options)
	snapshot.CreatedAt = existing.CreatedAt
	snapshot.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, s.db, &snapshot); err != nil {
		return domain.PackageSnapshot{}, err
	}
	return snapshot, nil
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.PackageSnapshot, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.PackageSnapshot{}, domain.ErrInvalidID
	}
	snapshot, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.PackageSnapshot{}, err
	}
	if snapshot == nil {
		return domain.PackageSnapshot{}, domain.ErrNotFound
	}
	return *snapshot, nil
}

func (s *Service) List(ctx context.Context, req domain.ListPackageRequest) (domain.ListPackageResponse, error) {
	page := pagination.Pagination{PageToken: req.PageToken, PageSize: req.PageSize}
	if page.PageSize <= 0 {
		page.PageSize = 10
	}

	rows, err := s.repo.List(ctx, s.db, domain.ListPackageFilter{Name: strings.TrimSpace(req.Name)}, page)
	if err != nil {
		return domain.ListPackageResponse{}, err
	}

	pageInfo, rows := pagination.BuildCursorPageInfo(rows, page.PageSize, func(p *domain.PackageSnapshot) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: p.ID.String()})
		return token
	})

	packages := make([]domain.PackageSnapshot, 0, len(rows))
	for _, row := range rows {
		packages = append(packages, *row)
	}
	return domain.ListPackageResponse{PageInfo: *pageInfo, Packages: packages}, nil
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

func (s *Service) Preview(ctx context.Context, req domain.PackageInput) (domain.PreviewResponse, error) {
	pkg, _, _, err := s.normalizeInput(req)
	if err != nil {
		return domain.PreviewResponse{}, err
	}
	breakdown := pricing.ComputeBreakdown(pkg)
	return domain.PreviewResponse{
		Breakdown:  breakdown,
		Projection: pricing.ProjectCosts(pkg, breakdown),
	}, nil
}

func (s *Service) Breakdown(ctx context.Context, rawID string) (domain.PreviewResponse, error) {
	snapshot, err := s.GetByID(ctx, rawID)
	if err != nil {
		return domain.PreviewResponse{}, err
	}
	pkg := snapshot.PricingPackage()
	breakdown := pricing.ComputeBreakdown(pkg)
	return domain.PreviewResponse{
		Breakdown:  breakdown,
		Projection: pricing.ProjectCosts(pkg, breakdown),
	}, nil
}

// normalizeInput is the model boundary of the pricing core: it
// rejects invalid line items, normalizes every month pair and clamps
// every percentage, so the engine can assume valid ranges.
func (s *Service) normalizeInput(req domain.PackageInput) (pricing.Package, []domain.PaymentOption, *snowflake.ID, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return pricing.Package{}, nil, nil, domain.ErrInvalidName
	}
	if req.DevelopmentCost < 0 {
		return pricing.Package{}, nil, nil, domain.ErrInvalidDevelopmentCost
	}

	var clientID *snowflake.ID
	if raw := strings.TrimSpace(req.ClientID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil {
			return pricing.Package{}, nil, nil, domain.ErrInvalidClient
		}
		clientID = &id
	}

	base, err := s.normalizeServices(req.BaseServices)
	if err != nil {
		return pricing.Package{}, nil, nil, err
	}
	optional, err := s.normalizeServices(req.OptionalServices)
	if err != nil {
		return pricing.Package{}, nil, nil, err
	}

	discounts, err := normalizeDiscounts(req.Discounts)
	if err != nil {
		return pricing.Package{}, nil, nil, err
	}

	options, err := normalizePaymentOptions(req.PaymentOptions)
	if err != nil {
		return pricing.Package{}, nil, nil, err
	}

	return pricing.Package{
		Name:             name,
		DevelopmentCost:  req.DevelopmentCost,
		BaseServices:     base,
		OptionalServices: optional,
		Discounts:        discounts,
	}, options, clientID, nil
}

func (s *Service) normalizeServices(inputs []domain.ServiceInput) ([]pricing.RecurringService, error) {
	services := make([]pricing.RecurringService, 0, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, domain.ErrInvalidServiceName
		}
		if in.MonthlyPrice <= 0 {
			return nil, domain.ErrInvalidServicePrice
		}

		id := strings.TrimSpace(in.ID)
		if id == "" {
			id = s.genID.Generate().String()
		}

		free, paid := pricing.NormalizeMonths(in.FreeMonths, in.PaidMonths)

		frequency := pricing.BillingFrequency(strings.ToLower(strings.TrimSpace(in.Frequency)))
		if frequency != pricing.BillingAnnual {
			frequency = pricing.BillingMonthly
		}

		services = append(services, pricing.RecurringService{
			ID:           id,
			Name:         name,
			MonthlyPrice: in.MonthlyPrice,
			FreeMonths:   free,
			PaidMonths:   paid,
			Frequency:    frequency,
		})
	}
	return services, nil
}

func normalizeDiscounts(cfg pricing.DiscountConfig) (pricing.DiscountConfig, error) {
	switch cfg.Mode {
	case "", pricing.DiscountModeNone:
		cfg.Mode = pricing.DiscountModeNone
	case pricing.DiscountModeGeneral, pricing.DiscountModeGranular:
	default:
		return pricing.DiscountConfig{}, domain.ErrInvalidDiscountMode
	}

	// Percentages are always clamped on write; the inactive mode's
	// payload is clamped too since it stays stored across mode switches.
	cfg.General.Percentage = clampPercentage(cfg.General.Percentage)
	cfg.Granular.Development = clampPercentage(cfg.Granular.Development)
	cfg.Granular.BaseServices = clampPercentageMap(cfg.Granular.BaseServices)
	cfg.Granular.OptionalServices = clampPercentageMap(cfg.Granular.OptionalServices)
	cfg.OneTimePayment = clampPercentage(cfg.OneTimePayment)
	cfg.FinalDirect = clampPercentage(cfg.FinalDirect)
	return cfg, nil
}

func normalizePaymentOptions(inputs []domain.PaymentOptionInput) ([]domain.PaymentOption, error) {
	if len(inputs) == 0 {
		return []domain.PaymentOption{}, nil
	}

	options := make([]domain.PaymentOption, 0, len(inputs))
	total := 0.0
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" || in.Percentage <= 0 {
			return nil, domain.ErrInvalidPaymentOptions
		}
		pct := clampPercentage(in.Percentage)
		total += pct
		options = append(options, domain.PaymentOption{Name: name, Percentage: pct})
	}
	if total < 100-paymentShareTolerance || total > 100+paymentShareTolerance {
		return nil, domain.ErrInvalidPaymentOptions
	}
	return options, nil
}

func buildSnapshot(id snowflake.ID, clientID *snowflake.ID, pkg pricing.Package, options []domain.PaymentOption) domain.PackageSnapshot {
	breakdown := pricing.ComputeBreakdown(pkg)
	costs := pricing.ProjectCosts(pkg, breakdown)

	return domain.PackageSnapshot{
		ID:               id,
		ClientID:         clientID,
		Name:             pkg.Name,
		DevelopmentCost:  pkg.DevelopmentCost,
		BaseServices:     datatypes.NewJSONType(pkg.BaseServices),
		OptionalServices: datatypes.NewJSONType(pkg.OptionalServices),
		Discounts:        datatypes.NewJSONType(pkg.Discounts),
		PaymentOptions:   datatypes.NewJSONType(options),
		InitialCost:      costs.Initial,
		YearOneCost:      costs.Year1,
		YearTwoCost:      costs.Year2,
	}
}

func clampPercentage(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampPercentageMap(values map[string]float64) map[string]float64 {
	if values == nil {
		return nil
	}
	out := make(map[string]float64, len(values))
	for id, pct := range values {
		out[id] = clampPercentage(pct)
	}
	return out
}

func parseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}
