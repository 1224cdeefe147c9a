package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// QuotationData is the display-ready document content. Amounts arrive
// preformatted so the renderer never re-derives a number the preview
// already showed.
type QuotationData struct {
	CompanyName  string
	CompanyEmail string

	ClientName  string
	ClientEmail string

	PackageName string
	IssueDate   string

	DevelopmentOriginal   string
	DevelopmentDiscounted string

	BaseLines     []QuotationLine
	OptionalLines []QuotationLine

	SubtotalOriginal string
	FinalTotal       string
	TotalSavings     string
	SavingsPct       string

	InitialCost string
	YearOneCost string
	YearTwoCost string

	PaymentOptions []PaymentShare
}

type QuotationLine struct {
	Name       string
	Months     int
	Original   string
	Discount   string
	Discounted string
}

type PaymentShare struct {
	Name       string
	Percentage string
}

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateQuotation(ctx context.Context, data QuotationData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Quotation", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(25,
		col.New(6).Add(
			text.New(data.CompanyName, props.Text{Style: fontstyle.Bold}),
			text.New(data.CompanyEmail, props.Text{Top: 5}),
			text.New("Date: "+data.IssueDate, props.Text{Top: 10}),
		),
		col.New(6).Add(
			text.New("Prepared for", props.Text{Style: fontstyle.Bold}),
			text.New(data.ClientName, props.Text{Top: 5}),
			text.New(data.ClientEmail, props.Text{Top: 10}),
		),
	)

	m.AddRow(12,
		text.NewCol(12, data.PackageName, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Top:   2,
		}),
	)

	m.AddRow(10,
		text.NewCol(6, "Concept", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Months", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Discount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	m.AddRow(10,
		text.NewCol(6, "Development", props.Text{Size: 9}),
		text.NewCol(2, "-", props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, data.DevelopmentOriginal, props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, data.DevelopmentDiscounted, props.Text{Size: 9, Align: align.Right}),
	)

	addLines := func(title string, lines []QuotationLine) {
		if len(lines) == 0 {
			return
		}
		m.AddRow(8,
			text.NewCol(12, title, props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}),
		)
		for _, line := range lines {
			m.AddRow(8,
				text.NewCol(6, line.Name, props.Text{Size: 9}),
				text.NewCol(2, fmt.Sprintf("%d", line.Months), props.Text{Size: 9, Align: align.Right}),
				text.NewCol(2, line.Discount, props.Text{Size: 9, Align: align.Right}),
				text.NewCol(2, line.Discounted, props.Text{Size: 9, Align: align.Right}),
			)
		}
	}
	addLines("Base services", data.BaseLines)
	addLines("Optional services", data.OptionalLines)

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9, Top: 3}),
		text.NewCol(2, data.SubtotalOriginal, props.Text{Size: 9, Align: align.Right, Top: 3}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Savings", props.Text{Size: 9}),
		text.NewCol(2, data.TotalSavings+" ("+data.SavingsPct+")", props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(2, data.FinalTotal, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	m.AddRow(10,
		text.NewCol(12, "Payment schedule", props.Text{Style: fontstyle.Bold, Size: 9, Top: 3}),
	)
	m.AddRow(8,
		text.NewCol(4, "At signing: "+data.InitialCost, props.Text{Size: 9}),
		text.NewCol(4, "First year: "+data.YearOneCost, props.Text{Size: 9}),
		text.NewCol(4, "From year two: "+data.YearTwoCost, props.Text{Size: 9}),
	)
	for _, share := range data.PaymentOptions {
		m.AddRow(6,
			text.NewCol(12, share.Name+": "+share.Percentage, props.Text{Size: 8}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
