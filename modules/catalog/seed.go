package catalog

import (
	"context"
	"log"

	domain "github.com/tungnhan410/Cty-ban-lieu-xay-dung/domain/catalog"
)

// seed inserts a starter product when the catalog is empty, so a fresh
// install has something to browse.
func (m *Module) seed(ctx context.Context) error {
	total, err := m.repo.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	starter := &domain.Product{
		Name:        "Xi măng ABC 50kg",
		Slug:        domain.Slugify("Xi măng ABC 50kg"),
		Description: "Xi măng chất lượng",
		Price:       95000,
		Stock:       120,
		Category:    "Vật liệu cơ bản",
	}
	if err := m.repo.Create(ctx, starter); err != nil {
		return err
	}

	log.Printf("[catalog] Seeded starter product %q (id=%d)", starter.Name, starter.ID)
	return nil
}
