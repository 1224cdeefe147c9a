package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const amountTolerance = 1e-9

func TestComputeBreakdown_NoDiscounts(t *testing.T) {
	pkg := Package{
		DevelopmentCost: 1500,
		BaseServices: []RecurringService{
			{ID: "hosting", Name: "Hosting", MonthlyPrice: 25, FreeMonths: 0, PaidMonths: 12},
			{ID: "mail", Name: "Mailbox", MonthlyPrice: 10, FreeMonths: 2, PaidMonths: 10},
		},
		OptionalServices: []RecurringService{
			{ID: "seo", Name: "SEO", MonthlyPrice: 100, FreeMonths: 0, PaidMonths: 12},
		},
		Discounts: DiscountConfig{Mode: DiscountModeNone},
	}

	b := ComputeBreakdown(pkg)

	assert.InDelta(t, 1500+300+100+1200, b.SubtotalOriginal, amountTolerance)
	assert.InDelta(t, b.SubtotalOriginal, b.SubtotalAfterLineDiscounts, amountTolerance)
	assert.InDelta(t, b.SubtotalOriginal, b.FinalTotal, amountTolerance)
	assert.InDelta(t, 0, b.TotalSavings, amountTolerance)
	assert.InDelta(t, 0, b.SavingsPercentage, amountTolerance)
}

func TestComputeBreakdown_GeneralDiscountScenario(t *testing.T) {
	// development 1000, hosting 28/month with 3 free and 9 paid months,
	// 10% general discount on development and base services only.
	pkg := Package{
		DevelopmentCost: 1000,
		BaseServices: []RecurringService{
			{ID: "hosting", Name: "Hosting", MonthlyPrice: 28, FreeMonths: 3, PaidMonths: 9},
		},
		Discounts: DiscountConfig{
			Mode: DiscountModeGeneral,
			General: GeneralDiscount{
				Percentage: 10,
				ApplyTo:    CategoryToggles{Development: true, BaseServices: true},
			},
		},
	}

	b := ComputeBreakdown(pkg)

	assert.InDelta(t, 900, b.DevelopmentDiscounted, amountTolerance)
	assert.Len(t, b.BaseLines, 1)
	assert.InDelta(t, 252, b.BaseLines[0].Original, amountTolerance)
	assert.InDelta(t, 226.8, b.BaseLines[0].Discounted, amountTolerance)
	assert.InDelta(t, 10, b.BaseLines[0].Percentage, amountTolerance)
	assert.InDelta(t, 1252, b.SubtotalOriginal, amountTolerance)
	assert.InDelta(t, 1126.8, b.SubtotalAfterLineDiscounts, amountTolerance)
	assert.InDelta(t, 1126.8, b.FinalTotal, amountTolerance)
	assert.InDelta(t, 125.2, b.TotalSavings, amountTolerance)
	assert.InDelta(t, 10.0, b.SavingsPercentage, 0.01)
}

func TestComputeBreakdown_FinalDirectDiscountAppliedOnceLast(t *testing.T) {
	pkg := Package{
		DevelopmentCost: 2000,
		BaseServices: []RecurringService{
			{ID: "hosting", Name: "Hosting", MonthlyPrice: 50, PaidMonths: 12},
		},
		Discounts: DiscountConfig{
			Mode:        DiscountModeNone,
			FinalDirect: 20,
		},
	}

	b := ComputeBreakdown(pkg)

	assert.InDelta(t, 2600, b.SubtotalOriginal, amountTolerance)
	assert.InDelta(t, 2600, b.SubtotalAfterLineDiscounts, amountTolerance, "direct discount never reaches the per-line amounts")
	assert.InDelta(t, 2600*0.8, b.FinalTotal, amountTolerance)
}

func TestComputeBreakdown_GranularMode(t *testing.T) {
	pkg := Package{
		DevelopmentCost: 1000,
		BaseServices: []RecurringService{
			{ID: "hosting", Name: "Hosting", MonthlyPrice: 30, PaidMonths: 10},
			{ID: "domain", Name: "Domain", MonthlyPrice: 2, PaidMonths: 12},
		},
		OptionalServices: []RecurringService{
			{ID: "seo", Name: "SEO", MonthlyPrice: 200, PaidMonths: 12},
		},
		Discounts: DiscountConfig{
			Mode: DiscountModeGranular,
			Granular: GranularDiscounts{
				Development:      50,
				BaseServices:     map[string]float64{"hosting": 10},
				OptionalServices: map[string]float64{},
			},
		},
	}

	b := ComputeBreakdown(pkg)

	assert.InDelta(t, 500, b.DevelopmentDiscounted, amountTolerance)
	assert.InDelta(t, 270, b.BaseLines[0].Discounted, amountTolerance)
	assert.InDelta(t, 24, b.BaseLines[1].Discounted, amountTolerance, "no granular entry means no discount")
	assert.InDelta(t, 2400, b.OptionalLines[0].Discounted, amountTolerance)
	assert.InDelta(t, 500+270+24+2400, b.SubtotalAfterLineDiscounts, amountTolerance)
}

func TestComputeBreakdown_OneTimePaymentDiscountIsMetadataOnly(t *testing.T) {
	pkg := Package{
		DevelopmentCost: 1000,
		Discounts: DiscountConfig{
			Mode:           DiscountModeNone,
			OneTimePayment: 25,
		},
	}

	b := ComputeBreakdown(pkg)

	assert.InDelta(t, 25, b.OneTimePaymentDiscount, amountTolerance)
	assert.InDelta(t, 1000, b.DevelopmentDiscounted, amountTolerance, "lump-sum discount never folds into the development amount")
	assert.InDelta(t, 1000, b.FinalTotal, amountTolerance)
}

func TestComputeBreakdown_EmptyPackage(t *testing.T) {
	b := ComputeBreakdown(Package{})

	assert.Zero(t, b.SubtotalOriginal)
	assert.Zero(t, b.FinalTotal)
	assert.Zero(t, b.SavingsPercentage, "zero subtotal must not divide")
}

func TestComputeBreakdown_Idempotent(t *testing.T) {
	pkg := Package{
		DevelopmentCost: 1234,
		BaseServices: []RecurringService{
			{ID: "hosting", Name: "Hosting", MonthlyPrice: 28, FreeMonths: 3, PaidMonths: 9},
		},
		OptionalServices: []RecurringService{
			{ID: "ads", Name: "Ads", MonthlyPrice: 75, PaidMonths: 12},
		},
		Discounts: DiscountConfig{
			Mode: DiscountModeGeneral,
			General: GeneralDiscount{
				Percentage: 12.5,
				ApplyTo:    CategoryToggles{Development: true, BaseServices: true, OptionalServices: true},
			},
			FinalDirect: 5,
		},
	}

	first := ComputeBreakdown(pkg)
	second := ComputeBreakdown(pkg)
	assert.Equal(t, first, second)
}
