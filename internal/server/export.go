package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/cotiza/internal/pricing"
	"github.com/smallbiznis/cotiza/internal/providers/pdf"
	quotedomain "github.com/smallbiznis/cotiza/internal/quote/domain"
)

// ExportPackagePDF renders a stored snapshot through the same engine
// the preview endpoint uses, so both surfaces show identical numbers.
func (s *Server) ExportPackagePDF(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	snapshot, err := s.quoteSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	preview, err := s.quoteSvc.Breakdown(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data := s.buildQuotationData(c, snapshot, preview)

	doc, err := s.pdfSvc.GenerateQuotation(c.Request.Context(), data)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	body, err := io.ReadAll(doc)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdfFileName(snapshot.Name)))
	c.Data(http.StatusOK, "application/pdf", body)
}

func (s *Server) buildQuotationData(c *gin.Context, snapshot quotedomain.PackageSnapshot, preview quotedomain.PreviewResponse) pdf.QuotationData {
	b := preview.Breakdown

	data := pdf.QuotationData{
		CompanyName:  s.cfg.CompanyName,
		CompanyEmail: s.cfg.CompanyEmail,
		PackageName:  snapshot.Name,
		IssueDate:    time.Now().UTC().Format("2006-01-02"),

		DevelopmentOriginal:   formatAmount(b.DevelopmentOriginal),
		DevelopmentDiscounted: formatAmount(b.DevelopmentDiscounted),

		BaseLines:     quotationLines(snapshot.BaseServices.Data(), b.BaseLines),
		OptionalLines: quotationLines(snapshot.OptionalServices.Data(), b.OptionalLines),

		SubtotalOriginal: formatAmount(b.SubtotalOriginal),
		FinalTotal:       formatAmount(b.FinalTotal),
		TotalSavings:     formatAmount(b.TotalSavings),
		SavingsPct:       formatPercentage(b.SavingsPercentage),

		InitialCost: formatAmount(preview.Projection.Initial),
		YearOneCost: formatAmount(preview.Projection.Year1),
		YearTwoCost: formatAmount(preview.Projection.Year2),
	}

	if snapshot.ClientID != nil {
		if client, err := s.clientSvc.GetByID(c.Request.Context(), snapshot.ClientID.String()); err == nil {
			data.ClientName = client.Name
			data.ClientEmail = client.Email
		}
	}

	for _, option := range snapshot.PaymentOptions.Data() {
		data.PaymentOptions = append(data.PaymentOptions, pdf.PaymentShare{
			Name:       option.Name,
			Percentage: formatPercentage(option.Percentage),
		})
	}

	return data
}

func quotationLines(services []pricing.RecurringService, lines []pricing.LineAmount) []pdf.QuotationLine {
	months := make(map[string]int, len(services))
	for _, svc := range services {
		months[svc.ID] = svc.PaidMonths
	}

	out := make([]pdf.QuotationLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, pdf.QuotationLine{
			Name:       line.Name,
			Months:     months[line.ServiceID],
			Original:   formatAmount(line.Original),
			Discount:   formatPercentage(line.Percentage),
			Discounted: formatAmount(line.Discounted),
		})
	}
	return out
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatPercentage(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func pdfFileName(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	if slug == "" {
		slug = "quotation"
	}
	return slug + ".pdf"
}
