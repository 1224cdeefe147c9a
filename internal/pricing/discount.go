package pricing

// ResolveDiscount returns the effective discount percentage for one
// cost category under the configuration's active mode. serviceID is
// only consulted in granular mode and only for service categories; an
// id with no granular entry resolves to 0, since a freshly added
// service has no override until the user sets one.
func ResolveDiscount(cfg DiscountConfig, category Category, serviceID string) float64 {
	switch cfg.Mode {
	case DiscountModeGeneral:
		return resolveGeneral(cfg.General, category)
	case DiscountModeGranular:
		return resolveGranular(cfg.Granular, category, serviceID)
	default:
		return 0
	}
}

func resolveGeneral(g GeneralDiscount, category Category) float64 {
	enabled := false
	switch category {
	case CategoryDevelopment:
		enabled = g.ApplyTo.Development
	case CategoryBaseService:
		enabled = g.ApplyTo.BaseServices
	case CategoryOptionalService:
		enabled = g.ApplyTo.OptionalServices
	}
	if !enabled {
		return 0
	}
	return g.Percentage
}

func resolveGranular(g GranularDiscounts, category Category, serviceID string) float64 {
	switch category {
	case CategoryDevelopment:
		return g.Development
	case CategoryBaseService:
		return g.BaseServices[serviceID]
	case CategoryOptionalService:
		return g.OptionalServices[serviceID]
	default:
		return 0
	}
}
