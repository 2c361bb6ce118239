package orders

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

	"github.com/tungnhan410/Cty-ban-lieu-xay-dung/domain/order"
	catalogmod "github.com/tungnhan410/Cty-ban-lieu-xay-dung/modules/catalog"
)

// Module provides checkout and order listing as a mono module. Orders live
// in the same SQLite database as the catalog but are written through a
// separate connection; the single insert in Checkout is the only write.
type Module struct {
	db      *gorm.DB
	repo    *order.Repository
	service *Service
	catalog catalogmod.Port
	dbPath  string
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.DependentModule = (*Module)(nil)

// NewModule creates a new orders module storing orders at dbPath.
func NewModule(dbPath string) *Module {
	return &Module{dbPath: dbPath}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "orders"
}

// Dependencies declares the modules this one calls into.
func (m *Module) Dependencies() []string {
	return []string{"catalog"}
}

// SetDependencyServiceContainer receives the catalog's service container.
func (m *Module) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "catalog" {
		m.catalog = catalogmod.NewAdapter(container)
	}
}

// Init opens the database and runs migrations.
func (m *Module) Init(_ mono.ServiceContainer) error {
	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db
	m.repo = order.NewRepository(db)

	if err := m.repo.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Printf("[orders] Database initialized at %s", m.dbPath)
	return nil
}

// RegisterServices registers the orders request-reply services.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "checkout", json.Unmarshal, json.Marshal, m.checkout,
	); err != nil {
		return fmt.Errorf("failed to register checkout service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list", json.Unmarshal, json.Marshal, m.listOrders,
	); err != nil {
		return fmt.Errorf("failed to register list service: %w", err)
	}

	log.Printf("[orders] Registered services: services.orders.{checkout,list}")
	return nil
}

// Start builds the service.
func (m *Module) Start(_ context.Context) error {
	if m.catalog == nil {
		return fmt.Errorf("catalog dependency not set")
	}
	m.service = NewService(m.repo, m.catalog)
	log.Println("[orders] Module started")
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
	log.Println("[orders] Database connection closed")
	return nil
}

// Service returns the order service for in-process callers and tests.
func (m *Module) Service() *Service {
	return m.service
}
