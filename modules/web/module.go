// Package web is the driving adapter: a Gin HTTP server rendering the
// storefront and admin pages, holding the per-visitor cart in a cookie
// session and calling the catalog and orders modules through their ports.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	catalogmod "github.com/tungnhan410/Cty-ban-lieu-xay-dung/modules/catalog"
	ordersmod "github.com/tungnhan410/Cty-ban-lieu-xay-dung/modules/orders"
	registrymod "github.com/tungnhan410/Cty-ban-lieu-xay-dung/modules/registry"
	uploadsmod "github.com/tungnhan410/Cty-ban-lieu-xay-dung/modules/uploads"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Config holds the web module configuration.
type Config struct {
	Port          int
	SessionSecret string
	UploadDir     string
}

// Module implements the HTTP server as a mono module.
type Module struct {
	cfg    Config
	server *http.Server
	engine *gin.Engine
	store  *sessions.CookieStore
	logger types.Logger

	catalog  catalogmod.Port
	orders   ordersmod.Port
	uploads  *uploadsmod.Module
	registry *registrymod.Module

	uploadsSvc  uploadsService
	registrySvc registryService
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.DependentModule = (*Module)(nil)

// NewModule creates a new web module.
func NewModule(cfg Config, logger types.Logger) *Module {
	return &Module{cfg: cfg, logger: logger}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "web"
}

// Dependencies declares the modules reached over the service bus.
func (m *Module) Dependencies() []string {
	return []string{"catalog", "orders"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *Module) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "catalog":
		m.catalog = catalogmod.NewAdapter(container)
	case "orders":
		m.orders = ordersmod.NewAdapter(container)
	}
}

// SetUploadsModule wires the upload storage module (called directly, not
// over the bus: file bytes have no business on the message bus).
func (m *Module) SetUploadsModule(um *uploadsmod.Module) {
	m.uploads = um
}

// SetRegistryModule wires the registration side-channel module.
func (m *Module) SetRegistryModule(rm *registrymod.Module) {
	m.registry = rm
}

// Start initializes and starts the HTTP server.
func (m *Module) Start(_ context.Context) error {
	if m.catalog == nil || m.orders == nil {
		return fmt.Errorf("catalog/orders dependencies not set")
	}
	if m.uploads != nil {
		m.uploadsSvc = m.uploads.Service()
	}
	if m.registry != nil {
		m.registrySvc = m.registry.Service()
	}

	m.store = sessions.NewCookieStore([]byte(m.cfg.SessionSecret))
	m.store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
	}

	gin.SetMode(gin.ReleaseMode)
	m.engine = m.buildEngine()

	m.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", m.cfg.Port),
		Handler:           m.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		m.logger.Info("HTTP server starting", "port", m.cfg.Port)
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			m.logger.Error("HTTP server error", "error", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP server.
func (m *Module) Stop(ctx context.Context) error {
	if m.server == nil {
		return nil
	}
	m.logger.Info("Shutting down HTTP server")
	return m.server.Shutdown(ctx)
}

// buildEngine assembles the Gin engine with templates, middleware and routes.
func (m *Module) buildEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	if m.logger != nil {
		engine.Use(m.loggingMiddleware())
	}

	funcs := template.FuncMap{
		"money": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		},
	}
	tmpl := template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
	engine.SetHTMLTemplate(tmpl)

	m.registerRoutes(engine)
	return engine
}

// registerRoutes sets up all HTTP routes. The admin surface is deliberately
// unauthenticated: the product has no login or role model.
func (m *Module) registerRoutes(engine *gin.Engine) {
	engine.GET("/", m.index)
	engine.GET("/product/:slug", m.productDetail)

	engine.GET("/cart", m.cartView)
	engine.GET("/cart/add/:id", m.cartAdd)
	engine.POST("/cart/add/:id", m.cartAdd)
	engine.GET("/cart/remove/:id", m.cartRemove)
	engine.GET("/checkout", m.checkout)
	engine.POST("/checkout", m.checkout)

	engine.GET("/admin", m.adminIndex)
	engine.GET("/admin/add", m.adminAddForm)
	engine.POST("/admin/add", m.adminAdd)
	engine.GET("/admin/delete/:id", m.adminDelete)
	engine.GET("/admin/orders", m.adminOrders)

	engine.POST("/register", m.register)
	engine.GET("/congno", m.congno)

	engine.Static("/uploads", m.cfg.UploadDir)
}

// loggingMiddleware logs each request with a generated request id.
func (m *Module) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		c.Next()

		m.logger.Info("HTTP request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}
