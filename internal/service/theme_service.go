package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/sections"
	"storefront-backend/internal/seed"
	"storefront-backend/internal/theme"
	"storefront-backend/pkg/validator"
)

// HomeTemplateKey is the template slot rendered at the storefront root.
const HomeTemplateKey = "home"

// ThemeService owns page templates and their rendering. Templates are
// stored whole per key; saving replaces the previous version.
type ThemeService struct {
	templateRepo repository.TemplateRepository
	registry     *sections.Registry
	renderer     *theme.Renderer
	catalog      *CatalogService
}

func NewThemeService(
	templateRepo repository.TemplateRepository,
	registry *sections.Registry,
	renderer *theme.Renderer,
	catalog *CatalogService,
) *ThemeService {
	return &ThemeService{
		templateRepo: templateRepo,
		registry:     registry,
		renderer:     renderer,
		catalog:      catalog,
	}
}

// renderContext adapts the catalog to what section renderers need.
type renderContext struct {
	catalog *CatalogService
}

func (c *renderContext) SanitizeHTML(input string) string {
	return validator.SanitizeHTML(input)
}

func (c *renderContext) Products(category string, limit int) []models.Product {
	if c.catalog == nil {
		return nil
	}
	return c.catalog.ProductsByCategory(category, limit)
}

// Template returns the stored template for key, falling back to the
// built-in home template so the storefront renders before any save.
func (s *ThemeService) Template(key string) (*models.PageTemplate, error) {
	row, err := s.templateRepo.GetByKey(key)
	if err == nil {
		return &row.Template, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || key == HomeTemplateKey {
		if key == HomeTemplateKey {
			tmpl := seed.HomeTemplate()
			return &tmpl, nil
		}
		return nil, errors.New("template not found")
	}

	return nil, fmt.Errorf("failed to load template: %w", err)
}

// SaveTemplate validates and persists a template under key. Every
// section instance must reference a registered section type; ids in the
// order array must exist in the sections map.
func (s *ThemeService) SaveTemplate(key string, req models.SaveTemplateRequest) (*models.PageTemplate, error) {
	tmpl := models.PageTemplate{
		Name:     req.Name,
		Sections: req.Sections,
		Order:    req.Order,
	}

	for id, inst := range tmpl.Sections {
		if inst.ID == "" {
			inst.ID = id
			tmpl.Sections[id] = inst
		}
		if _, ok := s.registry.Resolve(inst.Type); !ok {
			return nil, fmt.Errorf("unknown section type %q", inst.Type)
		}
	}
	for _, id := range tmpl.Order {
		if _, ok := tmpl.Sections[id]; !ok {
			return nil, fmt.Errorf("order references unknown section %q", id)
		}
	}

	if err := s.templateRepo.Upsert(&models.ThemeTemplate{Key: key, Template: tmpl}); err != nil {
		return nil, fmt.Errorf("failed to save template: %w", err)
	}

	return &tmpl, nil
}

// RenderHome renders the home template to ordered section fragments.
// preview wraps each fragment in an editor-addressable container.
func (s *ThemeService) RenderHome(preview bool) ([]theme.RenderedSection, error) {
	tmpl, err := s.Template(HomeTemplateKey)
	if err != nil {
		return nil, err
	}
	ctx := &renderContext{catalog: s.catalog}
	return s.renderer.Render(ctx, tmpl, preview), nil
}

// RenderTemplate renders an arbitrary template payload without saving
// it, for live editor previews.
func (s *ThemeService) RenderTemplate(tmpl *models.PageTemplate, preview bool) []theme.RenderedSection {
	ctx := &renderContext{catalog: s.catalog}
	return s.renderer.Render(ctx, tmpl, preview)
}

// SectionLibrary lists registered section types with their editor
// schemas, sorted by type.
func (s *ThemeService) SectionLibrary() []sections.SectionMetadata {
	return s.registry.ListMetadata()
}
