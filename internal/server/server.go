package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/cotiza/internal/catalog"
	catalogdomain "github.com/smallbiznis/cotiza/internal/catalog/domain"
	"github.com/smallbiznis/cotiza/internal/client"
	clientdomain "github.com/smallbiznis/cotiza/internal/client/domain"
	"github.com/smallbiznis/cotiza/internal/config"
	"github.com/smallbiznis/cotiza/internal/providers/pdf"
	"github.com/smallbiznis/cotiza/internal/quote"
	quotedomain "github.com/smallbiznis/cotiza/internal/quote/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	quote.Module,
	client.Module,
	catalog.Module,
	pdf.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(*Server) {}),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	db         *gorm.DB
	genID      *snowflake.Node
	quoteSvc   quotedomain.Service
	clientSvc  clientdomain.Service
	catalogSvc catalogdomain.Service
	pdfSvc     pdf.Provider
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	DB         *gorm.DB
	GenID      *snowflake.Node
	QuoteSvc   quotedomain.Service
	ClientSvc  clientdomain.Service
	CatalogSvc catalogdomain.Service
	PDFSvc     pdf.Provider
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		db:         p.DB,
		genID:      p.GenID,
		quoteSvc:   p.QuoteSvc,
		clientSvc:  p.ClientSvc,
		catalogSvc: p.CatalogSvc,
		pdfSvc:     p.PDFSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	v1 := s.engine.Group("/v1")

	packages := v1.Group("/packages")
	packages.POST("", s.CreatePackage)
	packages.GET("", s.ListPackages)
	packages.POST("/preview", s.PreviewPackage)
	packages.GET("/:id", s.GetPackageByID)
	packages.PUT("/:id", s.UpdatePackage)
	packages.DELETE("/:id", s.DeletePackage)
	packages.GET("/:id/breakdown", s.GetPackageBreakdown)
	packages.GET("/:id/pdf", s.ExportPackagePDF)

	clients := v1.Group("/clients")
	clients.POST("", s.CreateClient)
	clients.GET("", s.ListClients)
	clients.GET("/:id", s.GetClientByID)
	clients.PUT("/:id", s.UpdateClient)
	clients.DELETE("/:id", s.DeleteClient)

	services := v1.Group("/catalog/services")
	services.POST("", s.CreateCatalogService)
	services.GET("", s.ListCatalogServices)
	services.GET("/:id", s.GetCatalogServiceByID)
	services.PUT("/:id", s.UpdateCatalogService)
	services.DELETE("/:id", s.DeleteCatalogService)
}
