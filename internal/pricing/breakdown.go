package pricing

// ComputeBreakdown prices a package line by line and composes the
// result into a full breakdown. The composition order is load-bearing:
// per-line category discounts first, then the final direct discount
// exactly once on the composed subtotal. SubtotalOriginal keeps the
// undiscounted development amount as the savings baseline.
func ComputeBreakdown(pkg Package) Breakdown {
	cfg := pkg.Discounts

	devPct := ResolveDiscount(cfg, CategoryDevelopment, "")
	devDiscounted := pkg.DevelopmentCost * (1 - devPct/100)

	baseLines, baseOriginal, baseDiscounted := priceLines(cfg, CategoryBaseService, pkg.BaseServices)
	optLines, optOriginal, optDiscounted := priceLines(cfg, CategoryOptionalService, pkg.OptionalServices)

	subtotalOriginal := pkg.DevelopmentCost + baseOriginal + optOriginal
	subtotalAfterLines := devDiscounted + baseDiscounted + optDiscounted
	finalTotal := subtotalAfterLines * (1 - cfg.FinalDirect/100)

	totalSavings := subtotalOriginal - finalTotal
	savingsPct := 0.0
	if subtotalOriginal > 0 {
		savingsPct = totalSavings / subtotalOriginal * 100
	}

	return Breakdown{
		DevelopmentOriginal:   pkg.DevelopmentCost,
		DevelopmentDiscounted: devDiscounted,

		BaseLines:     baseLines,
		OptionalLines: optLines,

		BaseSubtotalOriginal:       baseOriginal,
		BaseSubtotalDiscounted:     baseDiscounted,
		OptionalSubtotalOriginal:   optOriginal,
		OptionalSubtotalDiscounted: optDiscounted,

		SubtotalOriginal:           subtotalOriginal,
		SubtotalAfterLineDiscounts: subtotalAfterLines,
		FinalTotal:                 finalTotal,

		TotalSavings:      totalSavings,
		SavingsPercentage: savingsPct,

		OneTimePaymentDiscount: cfg.OneTimePayment,
	}
}

func priceLines(cfg DiscountConfig, category Category, services []RecurringService) ([]LineAmount, float64, float64) {
	lines := make([]LineAmount, 0, len(services))
	var original, discounted float64

	for _, svc := range services {
		lineOriginal := svc.MonthlyPrice * float64(svc.PaidMonths)
		pct := ResolveDiscount(cfg, category, svc.ID)
		lineDiscounted := lineOriginal * (1 - pct/100)

		lines = append(lines, LineAmount{
			ServiceID:  svc.ID,
			Name:       svc.Name,
			Original:   lineOriginal,
			Discounted: lineDiscounted,
			Percentage: pct,
		})
		original += lineOriginal
		discounted += lineDiscounted
	}
	return lines, original, discounted
}
