package pdf

import (
	"context"
	"io"

	"go.uber.org/fx"
)

// Provider renders a priced quotation into a PDF document.
type Provider interface {
	GenerateQuotation(ctx context.Context, data QuotationData) (io.Reader, error)
}

// Module wires the maroto-backed renderer.
var Module = fx.Module("providers.pdf",
	fx.Provide(New),
)
