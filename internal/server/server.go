package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/instacotiza/cotiza/internal/config"
	"github.com/instacotiza/cotiza/internal/export"
	"github.com/instacotiza/cotiza/internal/observability"
	quotationdomain "github.com/instacotiza/cotiza/internal/quotation/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type serverParams struct {
	fx.In

	Log          *zap.Logger
	Cfg          config.Config
	QuotationSvc quotationdomain.Service
	Exporter     *export.Exporter
}

type Server struct {
	log          *zap.Logger
	cfg          config.Config
	quotationSvc quotationdomain.Service
	exporter     *export.Exporter
}

func NewServer(p serverParams) *Server {
	return &Server{
		log:          p.Log.Named("http.server"),
		cfg:          p.Cfg,
		quotationSvc: p.QuotationSvc,
		exporter:     p.Exporter,
	}
}

func NewEngine(metrics *observability.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.GinMiddleware(metrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/v1")

	users := v1.Group("/users/:user_id")
	users.POST("/quotations", s.SaveQuotation)
	users.GET("/quotations", s.ListQuotations)
	users.DELETE("/quotations/:index", s.DeleteQuotation)
	users.PUT("/quotations/:quote_number", s.UpdateQuotation)

	v1.POST("/quotations/export", s.ExportArtifact)
	v1.POST("/templates/export", s.ExportTemplate)
	v1.POST("/templates/import", s.ImportTemplate)
}

func registerRoutes(s *Server, r *gin.Engine) {
	s.RegisterRoutes(r)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)
