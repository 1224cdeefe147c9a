// Package pricing holds the pure computation that turns a package
// definition into an auditable price breakdown. Nothing here touches
// the database or the network; callers hand in plain values and render
// whatever comes back.
package pricing

// BillingFrequency is informational only. It never changes an amount
// formula; recurring amounts are always derived from the monthly price
// and the paid-month count.
type BillingFrequency string

const (
	BillingMonthly BillingFrequency = "monthly"
	BillingAnnual  BillingFrequency = "annual"
)

// RecurringService is a named recurring cost line, either part of the
// package baseline (hosting, mailbox, domain) or an optional add-on.
type RecurringService struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	MonthlyPrice float64          `json:"monthly_price"`
	FreeMonths   int              `json:"free_months"`
	PaidMonths   int              `json:"paid_months"`
	Frequency    BillingFrequency `json:"frequency,omitempty"`
}

// DiscountMode selects which discount payload the engine consults.
// Only one mode is active at a time; the inactive payload stays stored
// so switching modes does not lose prior edits.
type DiscountMode string

const (
	DiscountModeNone     DiscountMode = "none"
	DiscountModeGeneral  DiscountMode = "general"
	DiscountModeGranular DiscountMode = "granular"
)

// Category identifies which cost bucket a discount lookup is for.
type Category string

const (
	CategoryDevelopment     Category = "development"
	CategoryBaseService     Category = "baseService"
	CategoryOptionalService Category = "optionalService"
)

// CategoryToggles marks which buckets a general discount reaches.
type CategoryToggles struct {
	Development      bool `json:"development"`
	BaseServices     bool `json:"base_services"`
	OptionalServices bool `json:"optional_services"`
}

// GeneralDiscount applies one percentage uniformly to every line of
// each enabled category. There is no per-line override in this mode.
type GeneralDiscount struct {
	Percentage float64         `json:"percentage"`
	ApplyTo    CategoryToggles `json:"apply_to"`
}

// GranularDiscounts carries an independent percentage per line item,
// keyed by service id. A service absent from its map resolves to 0.
type GranularDiscounts struct {
	Development      float64            `json:"development"`
	BaseServices     map[string]float64 `json:"base_services"`
	OptionalServices map[string]float64 `json:"optional_services"`
}

// DiscountConfig is the full discount configuration of one package.
// OneTimePayment applies only to the development cost and only when
// the client pays up front; it is surfaced as metadata and never folds
// into the composed totals. FinalDirect is applied once, last, to the
// post-line-discount subtotal regardless of mode.
type DiscountConfig struct {
	Mode           DiscountMode      `json:"mode"`
	General        GeneralDiscount   `json:"general"`
	Granular       GranularDiscounts `json:"granular"`
	OneTimePayment float64           `json:"one_time_payment"`
	FinalDirect    float64           `json:"final_direct"`
}

// Package is the raw priced-package definition the engine consumes.
// Inputs are assumed already validated and month-normalized at the
// model boundary; the engine does no defensive clamping of its own.
type Package struct {
	Name             string
	DevelopmentCost  float64
	BaseServices     []RecurringService
	OptionalServices []RecurringService
	Discounts        DiscountConfig
}

// LineAmount is one priced recurring line of a breakdown.
type LineAmount struct {
	ServiceID  string  `json:"service_id"`
	Name       string  `json:"name"`
	Original   float64 `json:"original"`
	Discounted float64 `json:"discounted"`
	Percentage float64 `json:"percentage"`
}

// Breakdown is the full, display-ready price decomposition of a
// package. It is freshly allocated on every computation and never
// mutated afterwards.
type Breakdown struct {
	DevelopmentOriginal   float64 `json:"development_original"`
	DevelopmentDiscounted float64 `json:"development_discounted"`

	BaseLines     []LineAmount `json:"base_lines"`
	OptionalLines []LineAmount `json:"optional_lines"`

	BaseSubtotalOriginal       float64 `json:"base_subtotal_original"`
	BaseSubtotalDiscounted     float64 `json:"base_subtotal_discounted"`
	OptionalSubtotalOriginal   float64 `json:"optional_subtotal_original"`
	OptionalSubtotalDiscounted float64 `json:"optional_subtotal_discounted"`

	SubtotalOriginal           float64 `json:"subtotal_original"`
	SubtotalAfterLineDiscounts float64 `json:"subtotal_after_line_discounts"`
	FinalTotal                 float64 `json:"final_total"`

	TotalSavings      float64 `json:"total_savings"`
	SavingsPercentage float64 `json:"savings_percentage"`

	// Configured but intentionally not composed into FinalTotal; the
	// caller applies it if the lump-sum payment option is chosen.
	OneTimePaymentDiscount float64 `json:"one_time_payment_discount"`
}

// CostProjection is the three headline figures persisted on a snapshot
// and shown in list views, KPIs and the PDF.
type CostProjection struct {
	Initial float64 `json:"initial"`
	Year1   float64 `json:"year1"`
	Year2   float64 `json:"year2"`
}
