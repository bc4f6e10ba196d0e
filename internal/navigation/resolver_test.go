package navigation

import (
	"testing"

	"storefront-backend/internal/models"
)

type fakeCatalog struct {
	products   map[string]*models.Product
	categories map[string]bool
}

func (c *fakeCatalog) ProductByHandle(handle string) (*models.Product, bool) {
	p, ok := c.products[handle]
	return p, ok
}

func (c *fakeCatalog) HasCategory(slug string) bool {
	return c.categories[slug]
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		products: map[string]*models.Product{
			"kit-3-camisas": {Handle: "kit-3-camisas", Title: "Kit 3 Camisas"},
		},
		categories: map[string]bool{"kits": true, "vestidos": true},
	}
}

func TestResolveHomePaths(t *testing.T) {
	catalog := newFakeCatalog()

	for _, path := range []string{"/", "", "/index.html"} {
		d := Resolve(path, catalog)
		if d.Page != PageHome {
			t.Fatalf("expected home for %q, got %s", path, d.Page)
		}
	}
}

func TestResolveKnownProduct(t *testing.T) {
	d := Resolve("/product/kit-3-camisas", newFakeCatalog())

	if d.Page != PageProduct {
		t.Fatalf("expected product page, got %s", d.Page)
	}
	if d.Product == nil || d.Product.Handle != "kit-3-camisas" {
		t.Fatalf("expected resolved product, got %+v", d.Product)
	}
}

func TestResolveUnknownProductFallsBackToHome(t *testing.T) {
	d := Resolve("/product/nao-existe", newFakeCatalog())

	if d.Page != PageHome {
		t.Fatalf("expected home fallback for unknown handle, got %s", d.Page)
	}
	if d.Product != nil {
		t.Fatalf("expected no product on fallback, got %+v", d.Product)
	}
}

func TestResolveCategory(t *testing.T) {
	d := Resolve("/category/kits", newFakeCatalog())

	if d.Page != PageCategory || d.Category != "kits" {
		t.Fatalf("expected kits category, got %+v", d)
	}
}

func TestResolveUnknownCategoryFallsBackToHome(t *testing.T) {
	d := Resolve("/category/calcados", newFakeCatalog())

	if d.Page != PageHome {
		t.Fatalf("expected home fallback for unknown category, got %s", d.Page)
	}
}

func TestResolveTrailingSlashNormalization(t *testing.T) {
	catalog := newFakeCatalog()

	with := Resolve("/product/kit-3-camisas/", catalog)
	without := Resolve("/product/kit-3-camisas", catalog)

	if with.Page != without.Page {
		t.Fatalf("trailing slash changed resolution: %s vs %s", with.Page, without.Page)
	}
	if with.Product == nil || without.Product == nil || with.Product.Handle != without.Product.Handle {
		t.Fatalf("trailing slash changed product resolution")
	}
}

func TestResolveInfoPage(t *testing.T) {
	d := Resolve("/pages/exchanges", newFakeCatalog())

	if d.Page != PageInfo || d.InfoPage != "exchanges" {
		t.Fatalf("expected exchanges info page, got %+v", d)
	}

	// Info page types are not validated against a known set.
	unknown := Resolve("/pages/whatever", newFakeCatalog())
	if unknown.Page != PageInfo || unknown.InfoPage != "whatever" {
		t.Fatalf("expected unvalidated info page, got %+v", unknown)
	}
}

func TestResolveThankYouAndAdmin(t *testing.T) {
	if d := Resolve("/obrigada", newFakeCatalog()); d.Page != PageThankYou {
		t.Fatalf("expected thank_you, got %s", d.Page)
	}
	if d := Resolve("/admin", newFakeCatalog()); d.Page != PageAdmin {
		t.Fatalf("expected admin, got %s", d.Page)
	}
}

func TestResolveUnknownPathFallsBackToHome(t *testing.T) {
	if d := Resolve("/totally/unknown/path", newFakeCatalog()); d.Page != PageHome {
		t.Fatalf("expected home for unknown path, got %s", d.Page)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	catalog := newFakeCatalog()

	first := Resolve("/category/vestidos", catalog)
	second := Resolve("/category/vestidos", catalog)

	if first != second {
		t.Fatalf("resolution not deterministic: %+v vs %+v", first, second)
	}
}

func TestResolveAgainstRefreshedCatalog(t *testing.T) {
	catalog := newFakeCatalog()

	before := Resolve("/product/novo-produto", catalog)
	if before.Page != PageHome {
		t.Fatalf("expected home before product exists, got %s", before.Page)
	}

	catalog.products["novo-produto"] = &models.Product{Handle: "novo-produto"}

	after := Resolve("/product/novo-produto", catalog)
	if after.Page != PageProduct {
		t.Fatalf("expected product after catalog refresh, got %s", after.Page)
	}
}
