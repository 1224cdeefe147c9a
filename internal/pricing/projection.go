package pricing

import "strings"

// Management retainer lines are billed from month two onward, so the
// first invoice leaves them out. The source data carries both the
// Spanish and English spellings.
func isManagementService(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gestión", "gestion", "management":
		return true
	default:
		return false
	}
}

// ProjectCosts derives the three headline figures from a computed
// breakdown plus the raw service lists.
//
//   - Initial: the discounted build cost plus the first month of every
//     base service except a management retainer.
//   - Year1: the discounted build cost plus the full first-year
//     recurring bill, honoring each service's own free/paid split.
//   - Year2: a plain twelve-month recurring bill; no free months
//     remain and the build cost does not recur.
func ProjectCosts(pkg Package, b Breakdown) CostProjection {
	var initial float64
	for _, svc := range pkg.BaseServices {
		if isManagementService(svc.Name) {
			continue
		}
		initial += svc.MonthlyPrice
	}
	initial += b.DevelopmentDiscounted

	year1 := b.DevelopmentDiscounted
	year2 := 0.0
	for _, svc := range pkg.BaseServices {
		year1 += svc.MonthlyPrice * float64(svc.PaidMonths)
		year2 += svc.MonthlyPrice * monthsPerYear
	}
	for _, svc := range pkg.OptionalServices {
		year1 += svc.MonthlyPrice * float64(svc.PaidMonths)
		year2 += svc.MonthlyPrice * monthsPerYear
	}

	return CostProjection{Initial: initial, Year1: year1, Year2: year2}
}
