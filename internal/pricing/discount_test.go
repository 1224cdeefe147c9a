package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDiscount_ModeNone(t *testing.T) {
	cfg := DiscountConfig{
		Mode:    DiscountModeNone,
		General: GeneralDiscount{Percentage: 50, ApplyTo: CategoryToggles{Development: true, BaseServices: true, OptionalServices: true}},
		Granular: GranularDiscounts{
			Development:  30,
			BaseServices: map[string]float64{"svc-1": 25},
		},
	}

	for _, cat := range []Category{CategoryDevelopment, CategoryBaseService, CategoryOptionalService} {
		assert.Zero(t, ResolveDiscount(cfg, cat, "svc-1"))
	}
}

func TestResolveDiscount_ModeGeneral(t *testing.T) {
	cfg := DiscountConfig{
		Mode: DiscountModeGeneral,
		General: GeneralDiscount{
			Percentage: 15,
			ApplyTo:    CategoryToggles{Development: false, BaseServices: true, OptionalServices: true},
		},
	}

	assert.Zero(t, ResolveDiscount(cfg, CategoryDevelopment, ""), "disabled category stays at zero even with a percentage set")
	assert.Equal(t, 15.0, ResolveDiscount(cfg, CategoryBaseService, "any-id"))
	assert.Equal(t, 15.0, ResolveDiscount(cfg, CategoryBaseService, "another-id"), "general mode applies uniformly, id is ignored")
	assert.Equal(t, 15.0, ResolveDiscount(cfg, CategoryOptionalService, ""))
}

func TestResolveDiscount_ModeGranular(t *testing.T) {
	cfg := DiscountConfig{
		Mode: DiscountModeGranular,
		Granular: GranularDiscounts{
			Development:      40,
			BaseServices:     map[string]float64{"hosting": 10},
			OptionalServices: map[string]float64{"seo": 5},
		},
	}

	assert.Equal(t, 40.0, ResolveDiscount(cfg, CategoryDevelopment, ""))
	assert.Equal(t, 10.0, ResolveDiscount(cfg, CategoryBaseService, "hosting"))
	assert.Equal(t, 5.0, ResolveDiscount(cfg, CategoryOptionalService, "seo"))
	assert.Zero(t, ResolveDiscount(cfg, CategoryBaseService, "brand-new"), "absent id resolves to zero")
	assert.Zero(t, ResolveDiscount(cfg, CategoryOptionalService, "hosting"), "maps are per category")
}

func TestResolveDiscount_NilGranularMaps(t *testing.T) {
	cfg := DiscountConfig{Mode: DiscountModeGranular}
	assert.Zero(t, ResolveDiscount(cfg, CategoryBaseService, "svc"))
	assert.Zero(t, ResolveDiscount(cfg, CategoryOptionalService, "svc"))
}
