package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/tungnhan410/Cty-ban-lieu-xay-dung/domain/catalog"
	"github.com/tungnhan410/Cty-ban-lieu-xay-dung/modules/cache"
)

// Module provides the product catalog as a mono module backed by
// GORM + SQLite.
type Module struct {
	db          *gorm.DB
	repo        *domain.Repository
	service     *Service
	cacheModule *cache.Module
	dbPath      string
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)

// NewModule creates a new catalog module storing products at dbPath.
func NewModule(dbPath string) *Module {
	return &Module{dbPath: dbPath}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "catalog"
}

// SetCacheModule wires the optional read cache module. The cache connection
// only exists after that module's Init, so Start resolves it then; without a
// cache the catalog reads straight from the store.
func (m *Module) SetCacheModule(cm *cache.Module) {
	m.cacheModule = cm
}

// Init opens the database and runs migrations.
func (m *Module) Init(_ mono.ServiceContainer) error {
	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db
	m.repo = domain.NewRepository(db)

	if err := m.repo.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Printf("[catalog] Database initialized at %s", m.dbPath)
	return nil
}

// RegisterServices registers the catalog request-reply services. The
// framework prefixes them with "services.catalog." on the bus.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create", json.Unmarshal, json.Marshal, m.createProduct,
	); err != nil {
		return fmt.Errorf("failed to register create service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get", json.Unmarshal, json.Marshal, m.getProduct,
	); err != nil {
		return fmt.Errorf("failed to register get service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-by-slug", json.Unmarshal, json.Marshal, m.getProductBySlug,
	); err != nil {
		return fmt.Errorf("failed to register get-by-slug service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list", json.Unmarshal, json.Marshal, m.listProducts,
	); err != nil {
		return fmt.Errorf("failed to register list service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete", json.Unmarshal, json.Marshal, m.deleteProduct,
	); err != nil {
		return fmt.Errorf("failed to register delete service: %w", err)
	}

	log.Printf("[catalog] Registered services: services.catalog.{create,get,get-by-slug,list,delete}")
	return nil
}

// Start builds the service and seeds the catalog on first run.
func (m *Module) Start(ctx context.Context) error {
	var c *cache.Cache
	if m.cacheModule != nil {
		c = m.cacheModule.GetCache()
	}
	m.service = NewService(m.repo, c)

	if err := m.seed(ctx); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	log.Println("[catalog] Module started")
	return nil
}

// Stop closes the database connection.
func (m *Module) Stop(_ context.Context) error {
	if m.db == nil {
		return nil
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	log.Println("[catalog] Database connection closed")
	return nil
}

// Service returns the catalog service for in-process callers and tests.
func (m *Module) Service() *Service {
	return m.service
}
