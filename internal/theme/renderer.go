// Package theme turns a page template document into ordered HTML output
// by resolving each section instance against the section registry.
package theme

import (
	"fmt"
	"html/template"
	"strings"

	"storefront-backend/internal/models"
	"storefront-backend/internal/sections"
)

// Mode selects how unresolved section types are surfaced.
type Mode int

const (
	// ModeProduction silently omits sections whose type is not registered.
	ModeProduction Mode = iota
	// ModeDevelopment renders a visible inline diagnostic instead.
	ModeDevelopment
)

// RenderedSection is one section's output, tagged with its template id.
type RenderedSection struct {
	ID   string        `json:"id"`
	Type string        `json:"type"`
	HTML template.HTML `json:"html"`
}

// Renderer walks a template's order and renders each resolvable section.
// It is a pure function of (template, registry, mode, preview): data-shape
// problems never produce errors, only skipped or diagnostic output.
type Renderer struct {
	registry *sections.Registry
	mode     Mode
}

func NewRenderer(registry *sections.Registry, mode Mode) *Renderer {
	return &Renderer{registry: registry, mode: mode}
}

// Render produces the ordered section outputs for a template. A nil or
// empty template yields a single placeholder entry. Dangling order ids
// (no matching section instance) are skipped silently; disabled sections
// are skipped as well.
func (r *Renderer) Render(ctx sections.RenderContext, tmpl *models.PageTemplate, preview bool) []RenderedSection {
	if tmpl == nil || len(tmpl.Order) == 0 {
		return []RenderedSection{{
			ID:   "empty",
			Type: "placeholder",
			HTML: `<div class="theme-empty">Template vazio ou inválido</div>`,
		}}
	}

	var rendered []RenderedSection
	for _, sectionID := range tmpl.Order {
		inst, ok := tmpl.Sections[sectionID]
		if !ok {
			continue
		}
		if inst.Disabled {
			continue
		}

		desc, ok := r.registry.Resolve(inst.Type)
		if !ok {
			if r.mode == ModeDevelopment {
				rendered = append(rendered, RenderedSection{
					ID:   sectionID,
					Type: inst.Type,
					HTML: template.HTML(fmt.Sprintf(
						`<div class="theme-unknown-section">Seção desconhecida: %s</div>`,
						template.HTMLEscapeString(inst.Type),
					)),
				})
			}
			continue
		}

		html := desc.Renderer(ctx, inst)
		if preview {
			html = wrapPreview(sectionID, desc.Schema.Name, html)
		}

		rendered = append(rendered, RenderedSection{
			ID:   sectionID,
			Type: inst.Type,
			HTML: template.HTML(html),
		})
	}

	return rendered
}

// RenderHTML concatenates the rendered sections into a single document body.
func (r *Renderer) RenderHTML(ctx sections.RenderContext, tmpl *models.PageTemplate, preview bool) template.HTML {
	parts := r.Render(ctx, tmpl, preview)

	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(string(part.HTML))
		sb.WriteString("\n")
	}
	return template.HTML(sb.String())
}

// wrapPreview adds the editor affordance around a section: an outlined,
// labelled wrapper that must not change the section's layout or behavior.
func wrapPreview(sectionID, schemaName, inner string) string {
	return fmt.Sprintf(
		`<div id="section-%s" class="theme-preview-section" data-section-label="%s">%s</div>`,
		template.HTMLEscapeString(sectionID),
		template.HTMLEscapeString(schemaName),
		inner,
	)
}
