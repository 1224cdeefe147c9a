package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	catalogdomain "github.com/smallbiznis/cotiza/internal/catalog/domain"
	catalogrepo "github.com/smallbiznis/cotiza/internal/catalog/repository"
	catalogservice "github.com/smallbiznis/cotiza/internal/catalog/service"
	clientdomain "github.com/smallbiznis/cotiza/internal/client/domain"
	clientrepo "github.com/smallbiznis/cotiza/internal/client/repository"
	clientservice "github.com/smallbiznis/cotiza/internal/client/service"
	"github.com/smallbiznis/cotiza/internal/config"
	"github.com/smallbiznis/cotiza/internal/providers/pdf"
	quotedomain "github.com/smallbiznis/cotiza/internal/quote/domain"
	quoterepo "github.com/smallbiznis/cotiza/internal/quote/repository"
	quoteservice "github.com/smallbiznis/cotiza/internal/quote/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&clientdomain.Client{},
		&catalogdomain.CatalogService{},
		&quotedomain.PackageSnapshot{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	log := zap.NewNop()

	return NewServer(ServerParams{
		Gin:   NewEngine(log),
		Cfg:   config.Config{AppName: "cotiza-test", CompanyName: "Acme Web Studio"},
		DB:    db,
		GenID: node,
		QuoteSvc: quoteservice.New(quoteservice.Params{
			DB: db, Log: log, GenID: node, Repo: quoterepo.Provide(),
		}),
		ClientSvc: clientservice.New(clientservice.Params{
			DB: db, Log: log, GenID: node, Repo: clientrepo.Provide(),
		}),
		CatalogSvc: catalogservice.New(catalogservice.Params{
			DB: db, Log: log, GenID: node, Repo: catalogrepo.Provide(),
		}),
		PDFSvc: pdf.New(),
	})
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func packagePayload() map[string]any {
	return map[string]any{
		"name":             "Web Starter",
		"development_cost": 1000,
		"base_services": []map[string]any{
			{"name": "Hosting", "monthly_price": 28, "free_months": 3, "paid_months": 9},
		},
		"discounts": map[string]any{
			"mode": "general",
			"general": map[string]any{
				"percentage": 10,
				"apply_to":   map[string]any{"development": true, "base_services": true},
			},
		},
	}
}

func TestPreviewPackage(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/v1/packages/preview", packagePayload())
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Breakdown struct {
				DevelopmentDiscounted      float64 `json:"development_discounted"`
				SubtotalOriginal           float64 `json:"subtotal_original"`
				SubtotalAfterLineDiscounts float64 `json:"subtotal_after_line_discounts"`
				FinalTotal                 float64 `json:"final_total"`
				TotalSavings               float64 `json:"total_savings"`
			} `json:"breakdown"`
			Projection struct {
				Initial float64 `json:"initial"`
				Year1   float64 `json:"year1"`
				Year2   float64 `json:"year2"`
			} `json:"projection"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.InDelta(t, 900, resp.Data.Breakdown.DevelopmentDiscounted, 1e-9)
	assert.InDelta(t, 1252, resp.Data.Breakdown.SubtotalOriginal, 1e-9)
	assert.InDelta(t, 1126.8, resp.Data.Breakdown.SubtotalAfterLineDiscounts, 1e-9)
	assert.InDelta(t, 1126.8, resp.Data.Breakdown.FinalTotal, 1e-9)
	assert.InDelta(t, 125.2, resp.Data.Breakdown.TotalSavings, 1e-9)
	assert.InDelta(t, 928, resp.Data.Projection.Initial, 1e-9)
	assert.InDelta(t, 900+28*9, resp.Data.Projection.Year1, 1e-9)
	assert.InDelta(t, 28*12, resp.Data.Projection.Year2, 1e-9)
}

func TestCreateAndExportPackage(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/v1/packages", packagePayload())
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Data struct {
			ID          string  `json:"id"`
			InitialCost float64 `json:"initial_cost"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.InDelta(t, 928, created.Data.InitialCost, 1e-9)

	id := created.Data.ID

	w = doJSON(t, s, http.MethodGet, "/v1/packages/"+id+"/breakdown", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/v1/packages/"+id+"/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestCreatePackage_ValidationErrorPayload(t *testing.T) {
	s := newTestServer(t)

	payload := packagePayload()
	payload["name"] = "  "

	w := doJSON(t, s, http.MethodPost, "/v1/packages", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error struct {
			Type   string `json:"type"`
			Errors []struct {
				Code string `json:"code"`
			} `json:"errors"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error.Type)
	require.Len(t, resp.Error.Errors, 1)
	assert.Equal(t, "invalid_name", resp.Error.Errors[0].Code)
}

func TestGetPackage_NotFound(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/v1/packages/424242", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientCRUD(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/v1/clients", map[string]any{
		"name":  "Bodega Rivera",
		"email": "info@bodegarivera.example",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	id := created.Data.ID
	w = doJSON(t, s, http.MethodGet, "/v1/clients/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodDelete, "/v1/clients/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/v1/clients/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogServiceValidation(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/v1/catalog/services", map[string]any{
		"name":          "Hosting",
		"kind":          "premium",
		"monthly_price": 25,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, http.MethodPost, "/v1/catalog/services", map[string]any{
		"name":          "Hosting",
		"kind":          "base",
		"monthly_price": 25,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
