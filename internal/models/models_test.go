package models

import "testing"

func TestCheckoutURLForSizePrefersVariant(t *testing.T) {
	p := &Product{
		CheckoutURL: "https://pay.example/default",
		VariantURLs: StringMap{
			"M": "https://pay.example/m",
			"G": "https://pay.example/g",
		},
	}

	if got := p.CheckoutURLForSize("M"); got != "https://pay.example/m" {
		t.Fatalf("expected variant URL for M, got %s", got)
	}
	if got := p.CheckoutURLForSize("GG"); got != "https://pay.example/default" {
		t.Fatalf("expected product-wide fallback for unmapped size, got %s", got)
	}
}

func TestCheckoutURLForSizeWithoutVariants(t *testing.T) {
	p := &Product{CheckoutURL: "https://pay.example/default"}

	if got := p.CheckoutURLForSize("P"); got != "https://pay.example/default" {
		t.Fatalf("expected product-wide URL, got %s", got)
	}
}

func TestCheckoutURLForSizeEmptyVariantFallsBack(t *testing.T) {
	p := &Product{
		CheckoutURL: "https://pay.example/default",
		VariantURLs: StringMap{"M": ""},
	}

	if got := p.CheckoutURLForSize("M"); got != "https://pay.example/default" {
		t.Fatalf("expected fallback past empty variant URL, got %s", got)
	}
}

func TestCheckoutURLForSizeNilProduct(t *testing.T) {
	var p *Product
	if got := p.CheckoutURLForSize("M"); got != "" {
		t.Fatalf("expected empty URL for nil product, got %q", got)
	}
}

func TestPageTemplateScanRoundTrip(t *testing.T) {
	tmpl := PageTemplate{
		Name: "Home",
		Sections: map[string]SectionInstance{
			"hero": {ID: "hero", Type: "hero_banner", Settings: map[string]interface{}{"title": "Oi"}},
		},
		Order: []string{"hero"},
	}

	value, err := tmpl.Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}

	var decoded PageTemplate
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if decoded.Name != "Home" || len(decoded.Order) != 1 || decoded.Sections["hero"].Type != "hero_banner" {
		t.Fatalf("round trip lost data: %+v", decoded)
	}
}
