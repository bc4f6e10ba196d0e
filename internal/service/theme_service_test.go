package service

import (
	"strings"
	"testing"

	"gorm.io/gorm"

	"storefront-backend/internal/models"
	"storefront-backend/internal/sections"
	"storefront-backend/internal/theme"
)

type fakeTemplateRepo struct {
	templates map[string]*models.ThemeTemplate
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[string]*models.ThemeTemplate)}
}

func (r *fakeTemplateRepo) GetByKey(key string) (*models.ThemeTemplate, error) {
	if tmpl, ok := r.templates[key]; ok {
		return tmpl, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTemplateRepo) Upsert(tmpl *models.ThemeTemplate) error {
	r.templates[tmpl.Key] = tmpl
	return nil
}

func (r *fakeTemplateRepo) ExistsByKey(key string) (bool, error) {
	_, ok := r.templates[key]
	return ok, nil
}

func newThemeFixture() (*ThemeService, *fakeTemplateRepo) {
	repo := newFakeTemplateRepo()
	registry := sections.Default()
	renderer := theme.NewRenderer(registry, theme.ModeProduction)
	return NewThemeService(repo, registry, renderer, nil), repo
}

func TestTemplateFallsBackToBuiltinHome(t *testing.T) {
	svc, _ := newThemeFixture()

	tmpl, err := svc.Template(HomeTemplateKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tmpl.Order) == 0 {
		t.Fatalf("expected built-in home template to have sections")
	}
}

func TestTemplateUnknownKey(t *testing.T) {
	svc, _ := newThemeFixture()

	if _, err := svc.Template("landing"); err == nil {
		t.Fatalf("expected error for unknown template key")
	}
}

func TestSaveTemplateRejectsUnknownSectionType(t *testing.T) {
	svc, _ := newThemeFixture()

	_, err := svc.SaveTemplate(HomeTemplateKey, models.SaveTemplateRequest{
		Sections: map[string]models.SectionInstance{
			"x": {ID: "x", Type: "carousel_3000"},
		},
		Order: []string{"x"},
	})
	if err == nil || !strings.Contains(err.Error(), "unknown section type") {
		t.Fatalf("expected unknown section type error, got %v", err)
	}
}

func TestSaveTemplateRejectsDanglingOrderID(t *testing.T) {
	svc, _ := newThemeFixture()

	_, err := svc.SaveTemplate(HomeTemplateKey, models.SaveTemplateRequest{
		Sections: map[string]models.SectionInstance{
			"hero": {ID: "hero", Type: "hero_banner"},
		},
		Order: []string{"hero", "ghost"},
	})
	if err == nil || !strings.Contains(err.Error(), "order references unknown section") {
		t.Fatalf("expected dangling order id error, got %v", err)
	}
}

func TestSaveTemplateRoundTrips(t *testing.T) {
	svc, repo := newThemeFixture()

	saved, err := svc.SaveTemplate(HomeTemplateKey, models.SaveTemplateRequest{
		Name: "Home",
		Sections: map[string]models.SectionInstance{
			"hero": {Type: "hero_banner", Settings: map[string]interface{}{"title": "Oferta"}},
		},
		Order: []string{"hero"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Sections["hero"].ID != "hero" {
		t.Fatalf("expected instance id filled from map key")
	}

	stored := repo.templates[HomeTemplateKey]
	if stored == nil || stored.Template.Sections["hero"].Settings["title"] != "Oferta" {
		t.Fatalf("expected template persisted, got %+v", stored)
	}

	tmpl, err := svc.Template(HomeTemplateKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tmpl.Name != "Home" {
		t.Fatalf("expected stored template to win over builtin, got %s", tmpl.Name)
	}
}

func TestRenderHomeUsesStoredTemplate(t *testing.T) {
	svc, _ := newThemeFixture()

	if _, err := svc.SaveTemplate(HomeTemplateKey, models.SaveTemplateRequest{
		Sections: map[string]models.SectionInstance{
			"hero": {Type: "hero_banner", Settings: map[string]interface{}{"title": "Só Hoje"}},
		},
		Order: []string{"hero"},
	}); err != nil {
		t.Fatalf("failed to save template: %v", err)
	}

	rendered, err := svc.RenderHome(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rendered) != 1 {
		t.Fatalf("expected one rendered section, got %d", len(rendered))
	}
	if !strings.Contains(string(rendered[0].HTML), "Só Hoje") {
		t.Fatalf("expected hero title in output, got %s", rendered[0].HTML)
	}
}
