package registry

import (
	"context"
	"database/sql"
	"fmt"
)

// Service records registrations with plain SQL.
type Service struct {
	db *sql.DB
}

// NewService creates a registry service on an open database handle.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Register stores a username/company/president triple.
func (s *Service) Register(ctx context.Context, username, company, president string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, company, president) VALUES (?, ?, ?)",
		username, company, president,
	)
	if err != nil {
		return fmt.Errorf("failed to insert registration: %w", err)
	}
	return nil
}
