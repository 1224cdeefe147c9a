package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectCosts(t *testing.T) {
	pkg := Package{
		DevelopmentCost: 1000,
		BaseServices: []RecurringService{
			{ID: "hosting", Name: "Hosting", MonthlyPrice: 28, FreeMonths: 3, PaidMonths: 9},
			{ID: "mgmt", Name: "Gestión", MonthlyPrice: 50, FreeMonths: 0, PaidMonths: 12},
		},
		OptionalServices: []RecurringService{
			{ID: "seo", Name: "SEO", MonthlyPrice: 100, FreeMonths: 6, PaidMonths: 6},
		},
		Discounts: DiscountConfig{
			Mode: DiscountModeGeneral,
			General: GeneralDiscount{
				Percentage: 10,
				ApplyTo:    CategoryToggles{Development: true},
			},
		},
	}

	b := ComputeBreakdown(pkg)
	costs := ProjectCosts(pkg, b)

	// The management retainer is excluded from the first invoice but
	// counts fully toward both yearly totals.
	assert.InDelta(t, 900+28, costs.Initial, amountTolerance)
	assert.InDelta(t, 900+28*9+50*12+100*6, costs.Year1, amountTolerance)
	assert.InDelta(t, 28*12+50*12+100*12, costs.Year2, amountTolerance)
}

func TestProjectCosts_ManagementNameMatching(t *testing.T) {
	cases := []struct {
		name     string
		excluded bool
	}{
		{name: "Gestión", excluded: true},
		{name: "gestion", excluded: true},
		{name: "MANAGEMENT", excluded: true},
		{name: "  management  ", excluded: true},
		{name: "Hosting", excluded: false},
		{name: "Gestión Web", excluded: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pkg := Package{
				BaseServices: []RecurringService{
					{ID: "svc", Name: tc.name, MonthlyPrice: 40, PaidMonths: 12},
				},
			}
			costs := ProjectCosts(pkg, ComputeBreakdown(pkg))
			if tc.excluded {
				assert.Zero(t, costs.Initial)
			} else {
				assert.InDelta(t, 40, costs.Initial, amountTolerance)
			}
			assert.InDelta(t, 480, costs.Year1, amountTolerance)
			assert.InDelta(t, 480, costs.Year2, amountTolerance)
		})
	}
}

func TestProjectCosts_EmptyPackage(t *testing.T) {
	pkg := Package{}
	costs := ProjectCosts(pkg, ComputeBreakdown(pkg))
	assert.Zero(t, costs.Initial)
	assert.Zero(t, costs.Year1)
	assert.Zero(t, costs.Year2)
}

func TestProjectCosts_FreeMonthsOnlyAffectYearOne(t *testing.T) {
	pkg := Package{
		BaseServices: []RecurringService{
			{ID: "hosting", Name: "Hosting", MonthlyPrice: 30, FreeMonths: 12, PaidMonths: 0},
		},
	}
	costs := ProjectCosts(pkg, ComputeBreakdown(pkg))
	assert.InDelta(t, 30, costs.Initial, amountTolerance)
	assert.Zero(t, costs.Year1)
	assert.InDelta(t, 360, costs.Year2, amountTolerance)
}
