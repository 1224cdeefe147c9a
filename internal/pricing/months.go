package pricing

const monthsPerYear = 12

// NormalizeMonths reconciles a service's free/paid month pair so it
// always sums to 12. The edit the user just made drives the outcome:
// callers pass the edited field plus the other field's current value,
// and a non-zero free count wins ties over the paid count.
func NormalizeMonths(free, paid int) (int, int) {
	free = clampMonths(free)
	paid = clampMonths(paid)

	switch {
	case free+paid == monthsPerYear:
		// already consistent
	case free > 0:
		paid = monthsPerYear - free
	case paid > 0:
		free = monthsPerYear - paid
	default:
		paid = monthsPerYear
	}

	if free == monthsPerYear {
		return monthsPerYear, 0
	}
	// A service is never entirely unpaid unless it is explicitly 100% free.
	if paid == 0 {
		return monthsPerYear - 1, 1
	}
	return free, paid
}

func clampMonths(v int) int {
	if v < 0 {
		return 0
	}
	if v > monthsPerYear {
		return monthsPerYear
	}
	return v
}
