package registry

import (
	"context"
	"path/filepath"
	"testing"
)

func TestService_Register(t *testing.T) {
	m := NewModule(filepath.Join(t.TempDir(), "data.db"))
	ctx := context.Background()

	if err := m.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(func() { _ = m.Stop(ctx) })

	if err := m.Service().Register(ctx, "tung", "Cty Ban Lieu", "Nguyen Van A"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	var username, company, president string
	row := m.db.QueryRowContext(ctx, "SELECT username, company, president FROM users WHERE username = ?", "tung")
	if err := row.Scan(&username, &company, &president); err != nil {
		t.Fatalf("failed to read registration back: %v", err)
	}
	if company != "Cty Ban Lieu" || president != "Nguyen Van A" {
		t.Errorf("unexpected row: %s / %s / %s", company, president, username)
	}
}

func TestModule_StartIsIdempotentOnSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		m := NewModule(path)
		if err := m.Start(ctx); err != nil {
			t.Fatalf("Start() run %d error = %v", i, err)
		}
		if err := m.Stop(ctx); err != nil {
			t.Fatalf("Stop() run %d error = %v", i, err)
		}
	}
}
