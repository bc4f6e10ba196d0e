package seed

import "storefront-backend/internal/models"

// HomeTemplate is the default homepage template used until an admin saves
// their own through the theme editor.
func HomeTemplate() models.PageTemplate {
	return models.PageTemplate{
		Name: "Home Page",
		Sections: map[string]models.SectionInstance{
			"hero-main": {
				ID:   "hero-main",
				Type: "hero_banner",
				Settings: map[string]interface{}{
					"image_desktop":   "https://cdn.shopify.com/s/files/1/0809/1274/4673/files/heronew.png?v=1770054480",
					"title":           "Kit 3 Camisas Ibiza Premium",
					"subtitle":        "O Kit Mais Vendido da Internet",
					"button_text":     "Comprar Agora",
					"button_link":     "/product/kit-3-camisas-ibiza-em-linho-de-algodao",
					"overlay_opacity": 20,
				},
			},
			"grid-featured": {
				ID:   "grid-featured",
				Type: "product_grid",
				Settings: map[string]interface{}{
					"title":           "Destaques",
					"category_filter": "all",
					"limit":           8,
				},
			},
			"story": {
				ID:   "story",
				Type: "rich_text",
				Settings: map[string]interface{}{
					"title":   "Leveza que veste bem",
					"content": "<p>Peças em tecidos naturais, pensadas para o clima brasileiro.</p>",
					"width":   "narrow",
				},
			},
		},
		Order: []string{"hero-main", "grid-featured", "story"},
	}
}
