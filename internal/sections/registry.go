package sections

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"storefront-backend/internal/models"
)

// RenderContext exposes the minimal capabilities section renderers need.
type RenderContext interface {
	// SanitizeHTML cleans potentially unsafe markup before rendering.
	SanitizeHTML(input string) string
	// Products returns catalog products for data-driven sections, filtered
	// by category slug ("" or "all" means no filter) and capped at limit.
	Products(category string, limit int) []models.Product
}

// Renderer turns a section instance into an HTML fragment. Data-shape
// problems (missing settings, wrong types) degrade to defaults or empty
// output, never to an error.
type Renderer func(ctx RenderContext, inst models.SectionInstance) string

// Descriptor pairs a section renderer with its declarative schema.
type Descriptor struct {
	Renderer Renderer
	Schema   Schema
}

// Registry maps section type identifiers to descriptors. Contents are
// fixed at application start; an unresolved type is a normal outcome that
// callers handle explicitly.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]*Descriptor
}

func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]*Descriptor)}
}

// Register associates a descriptor with a normalised section type.
func (r *Registry) Register(sectionType string, desc *Descriptor) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}

	sectionType = strings.TrimSpace(strings.ToLower(sectionType))
	if sectionType == "" {
		return fmt.Errorf("section type is empty")
	}
	if desc == nil || desc.Renderer == nil {
		return fmt.Errorf("renderer is nil for type %s", sectionType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.descriptors == nil {
		r.descriptors = make(map[string]*Descriptor)
	}
	r.descriptors[sectionType] = desc
	return nil
}

// MustRegister registers the descriptor and panics if registration fails.
func (r *Registry) MustRegister(sectionType string, desc *Descriptor) {
	if err := r.Register(sectionType, desc); err != nil {
		panic(err)
	}
}

// Resolve retrieves the descriptor for a section type if one is registered.
func (r *Registry) Resolve(sectionType string) (*Descriptor, bool) {
	if r == nil {
		return nil, false
	}

	sectionType = strings.TrimSpace(strings.ToLower(sectionType))
	if sectionType == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.descriptors[sectionType]
	return desc, ok
}

// SectionMetadata is the editor-facing listing entry for one section type.
type SectionMetadata struct {
	Type   string `json:"type"`
	Name   string `json:"name"`
	Schema Schema `json:"schema"`
}

// ListMetadata returns metadata for every registered section type.
func (r *Registry) ListMetadata() []SectionMetadata {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]SectionMetadata, 0, len(r.descriptors))
	for sectionType, desc := range r.descriptors {
		result = append(result, SectionMetadata{
			Type:   sectionType,
			Name:   desc.Schema.Name,
			Schema: desc.Schema,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Type < result[j].Type })
	return result
}

// MarshalMetadataJSON returns the JSON listing served to the visual editor.
func (r *Registry) MarshalMetadataJSON() ([]byte, error) {
	return json.Marshal(r.ListMetadata())
}

// Default builds the registry with the storefront's section library.
func Default() *Registry {
	reg := NewRegistry()
	RegisterHeroBanner(reg)
	RegisterProductGrid(reg)
	RegisterRichText(reg)
	return reg
}
