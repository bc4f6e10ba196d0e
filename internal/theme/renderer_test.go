package theme

import (
	"strings"
	"testing"

	"storefront-backend/internal/models"
	"storefront-backend/internal/sections"
)

type nopContext struct{}

func (nopContext) SanitizeHTML(input string) string            { return input }
func (nopContext) Products(string, int) []models.Product       { return nil }

func testRegistry(t *testing.T) *sections.Registry {
	t.Helper()

	reg := sections.NewRegistry()
	err := reg.Register("banner", &sections.Descriptor{
		Renderer: func(ctx sections.RenderContext, inst models.SectionInstance) string {
			return "<div>banner:" + inst.ID + "</div>"
		},
		Schema: sections.Schema{Name: "Banner"},
	})
	if err != nil {
		t.Fatalf("failed to register section: %v", err)
	}
	return reg
}

func twoSectionTemplate() *models.PageTemplate {
	return &models.PageTemplate{
		Sections: map[string]models.SectionInstance{
			"a": {ID: "a", Type: "banner"},
			"b": {ID: "b", Type: "banner"},
		},
		Order: []string{"b", "a"},
	}
}

func TestRenderFollowsOrderArray(t *testing.T) {
	r := NewRenderer(testRegistry(t), ModeProduction)

	out := r.Render(nopContext{}, twoSectionTemplate(), false)
	if len(out) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(out))
	}
	if out[0].ID != "b" || out[1].ID != "a" {
		t.Fatalf("expected order [b a], got [%s %s]", out[0].ID, out[1].ID)
	}
}

func TestRenderEmptyTemplateYieldsPlaceholder(t *testing.T) {
	r := NewRenderer(testRegistry(t), ModeProduction)

	for _, tmpl := range []*models.PageTemplate{nil, {}, {Order: []string{}}} {
		out := r.Render(nopContext{}, tmpl, false)
		if len(out) != 1 {
			t.Fatalf("expected single placeholder, got %d entries", len(out))
		}
		if !strings.Contains(string(out[0].HTML), "theme-empty") {
			t.Fatalf("expected placeholder markup, got %s", out[0].HTML)
		}
	}
}

func TestRenderSkipsDanglingOrderIDs(t *testing.T) {
	r := NewRenderer(testRegistry(t), ModeProduction)

	tmpl := twoSectionTemplate()
	tmpl.Order = []string{"b", "missing", "a"}

	out := r.Render(nopContext{}, tmpl, false)
	if len(out) != 2 {
		t.Fatalf("expected dangling id to be skipped, got %d sections", len(out))
	}
}

func TestRenderSkipsDisabledSections(t *testing.T) {
	r := NewRenderer(testRegistry(t), ModeProduction)

	tmpl := twoSectionTemplate()
	inst := tmpl.Sections["a"]
	inst.Disabled = true
	tmpl.Sections["a"] = inst

	out := r.Render(nopContext{}, tmpl, false)
	if len(out) != 1 || out[0].ID != "b" {
		t.Fatalf("expected only enabled section, got %+v", out)
	}
}

func TestUnknownTypeProductionVsDevelopment(t *testing.T) {
	tmpl := &models.PageTemplate{
		Sections: map[string]models.SectionInstance{
			"x": {ID: "x", Type: "does_not_exist"},
		},
		Order: []string{"x"},
	}

	prod := NewRenderer(testRegistry(t), ModeProduction)
	if out := prod.Render(nopContext{}, tmpl, false); len(out) != 0 {
		t.Fatalf("production should omit unknown section, got %d entries", len(out))
	}

	dev := NewRenderer(testRegistry(t), ModeDevelopment)
	out := dev.Render(nopContext{}, tmpl, false)
	if len(out) != 1 {
		t.Fatalf("development should surface unknown section, got %d entries", len(out))
	}
	if !strings.Contains(string(out[0].HTML), "theme-unknown-section") {
		t.Fatalf("expected diagnostic markup, got %s", out[0].HTML)
	}
}

func TestPreviewWrapperIsAdditive(t *testing.T) {
	r := NewRenderer(testRegistry(t), ModeProduction)
	tmpl := twoSectionTemplate()

	plain := r.Render(nopContext{}, tmpl, false)
	preview := r.Render(nopContext{}, tmpl, true)

	for i := range plain {
		if !strings.Contains(string(preview[i].HTML), string(plain[i].HTML)) {
			t.Fatalf("preview output must contain unwrapped output for %s", plain[i].ID)
		}
		if !strings.Contains(string(preview[i].HTML), `id="section-`+plain[i].ID+`"`) {
			t.Fatalf("preview wrapper missing section id for %s", plain[i].ID)
		}
		if !strings.Contains(string(preview[i].HTML), `data-section-label="Banner"`) {
			t.Fatalf("preview wrapper missing label for %s", plain[i].ID)
		}
	}
}

func TestRenderHTMLConcatenatesInOrder(t *testing.T) {
	r := NewRenderer(testRegistry(t), ModeProduction)

	html := string(r.RenderHTML(nopContext{}, twoSectionTemplate(), false))
	first := strings.Index(html, "banner:b")
	second := strings.Index(html, "banner:a")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("unexpected concatenation order: %s", html)
	}
}
