package uploads

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-monolith/mono"
)

// Module provides image file storage as a mono module.
type Module struct {
	service *Service
	dir     string
}

var _ mono.Module = (*Module)(nil)

// NewModule creates a new uploads module storing files under dir.
func NewModule(dir string) *Module {
	return &Module{dir: dir}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "uploads"
}

// Start ensures the upload directory exists.
func (m *Module) Start(_ context.Context) error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	m.service = NewService(m.dir)
	log.Printf("[uploads] Storing files under %s", m.dir)
	return nil
}

// Stop stops the module.
func (m *Module) Stop(_ context.Context) error {
	return nil
}

// Service returns the upload service.
func (m *Module) Service() *Service {
	return m.service
}
