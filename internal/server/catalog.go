package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/smallbiznis/cotiza/internal/catalog/domain"
)

type catalogServiceRequest struct {
	Name         string  `json:"name"`
	Kind         string  `json:"kind"`
	MonthlyPrice float64 `json:"monthly_price"`
	Frequency    string  `json:"frequency"`
	FreeMonths   int     `json:"free_months"`
	PaidMonths   int     `json:"paid_months"`
	Active       *bool   `json:"active"`
}

func (r catalogServiceRequest) toDomain() catalogdomain.UpsertServiceRequest {
	return catalogdomain.UpsertServiceRequest{
		Name:         strings.TrimSpace(r.Name),
		Kind:         strings.TrimSpace(r.Kind),
		MonthlyPrice: r.MonthlyPrice,
		Frequency:    strings.TrimSpace(r.Frequency),
		FreeMonths:   r.FreeMonths,
		PaidMonths:   r.PaidMonths,
		Active:       r.Active,
	}
}

func (s *Server) CreateCatalogService(c *gin.Context) {
	var req catalogServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateCatalogService(c *gin.Context) {
	var req catalogServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.Update(c.Request.Context(), catalogdomain.UpdateServiceRequest{
		ID:                   strings.TrimSpace(c.Param("id")),
		UpsertServiceRequest: req.toDomain(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetCatalogServiceByID(c *gin.Context) {
	resp, err := s.catalogSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListCatalogServices(c *gin.Context) {
	var query struct {
		Kind       string `form:"kind"`
		ActiveOnly bool   `form:"active_only"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.List(c.Request.Context(), catalogdomain.ListServiceRequest{
		Kind:       strings.TrimSpace(query.Kind),
		ActiveOnly: query.ActiveOnly,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteCatalogService(c *gin.Context) {
	if err := s.catalogSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func isCatalogValidationError(err error) bool {
	switch err {
	case catalogdomain.ErrInvalidID,
		catalogdomain.ErrInvalidName,
		catalogdomain.ErrInvalidKind,
		catalogdomain.ErrInvalidPrice:
		return true
	default:
		return false
	}
}
