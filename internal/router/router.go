package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"

	"github.com/courtside/pickleball-api/internal/handler"
	"github.com/courtside/pickleball-api/internal/middleware"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// AdminHandler is a handler with an additional moderation surface that only
// mounts behind authentication.
type AdminHandler interface {
	Handler
	RegisterAdminRoutes(*gin.RouterGroup)
}

type Router struct {
	engine      *gin.Engine
	auth        *middleware.AuthMiddleware
	authH       Handler
	tournamentH AdminHandler
	clubH       AdminHandler
	courtH      AdminHandler
	athleteH    AdminHandler
	geocodeH    Handler
	h           *handler.Handler
	metrics     *routerMetrics
	cacheTTL    time.Duration
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

type RouterConfig struct {
	RateLimit     rate.Limit
	RateBurst     int
	CORSConfig    middleware.CORSConfig
	MetricsPrefix string
	CatalogTTL    time.Duration
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH Handler,
	tournamentH AdminHandler,
	clubH AdminHandler,
	courtH AdminHandler,
	athleteH AdminHandler,
	geocodeH Handler,
	h *handler.Handler,
	config RouterConfig,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	r := &Router{
		engine:      engine,
		auth:        auth,
		authH:       authH,
		tournamentH: tournamentH,
		clubH:       clubH,
		courtH:      courtH,
		athleteH:    athleteH,
		geocodeH:    geocodeH,
		h:           h,
		metrics:     initRouterMetrics(config.MetricsPrefix),
		cacheTTL:    config.CatalogTTL,
	}

	engine.Use(
		gin.Recovery(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		middleware.Validation(middleware.DefaultValidationConfig()),
		r.metricsMiddleware(),
		middleware.RequestID(),
	)

	engine.Use(middleware.CORS(config.CORSConfig))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	r.engine.GET("/healthz", r.h.HealthCheck)
	r.engine.GET("/metrics", r.h.MetricsHandler)

	api := r.engine.Group("/api/v1")

	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", "1.0")
		c.Next()
	})

	r.setupPublicRoutes(api)

	protected := api.Group("/admin")
	protected.Use(
		r.auth.Authenticate(),
		r.auth.RequireAdmin(),
	)
	r.setupAdminRoutes(protected)
}

func (r *Router) setupPublicRoutes(rg *gin.RouterGroup) {
	r.authH.RegisterRoutes(rg)
	r.geocodeH.RegisterRoutes(rg)

	// Catalog reads carry cache headers; submissions in the same groups
	// are POSTs and get no-store.
	catalog := rg.Group("")
	catalog.Use(middleware.CacheControl(r.cacheTTL))
	r.tournamentH.RegisterRoutes(catalog)
	r.clubH.RegisterRoutes(catalog)
	r.courtH.RegisterRoutes(catalog)
	r.athleteH.RegisterRoutes(catalog)
}

func (r *Router) setupAdminRoutes(rg *gin.RouterGroup) {
	r.tournamentH.RegisterAdminRoutes(rg)
	r.clubH.RegisterAdminRoutes(rg)
	r.courtH.RegisterAdminRoutes(rg)
	r.athleteH.RegisterAdminRoutes(rg)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics(prefix string) *routerMetrics {
	return &routerMetrics{
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
