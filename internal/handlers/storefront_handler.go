package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/navigation"
	"storefront-backend/internal/service"
)

type StorefrontHandler struct {
	catalogService *service.CatalogService
	themeService   *service.ThemeService
}

func NewStorefrontHandler(catalogService *service.CatalogService, themeService *service.ThemeService) *StorefrontHandler {
	return &StorefrontHandler{
		catalogService: catalogService,
		themeService:   themeService,
	}
}

// Resolve maps a storefront path to the page it should render. Unknown
// handles resolve to the home page rather than an error, so stale links
// never strand a visitor.
func (h *StorefrontHandler) Resolve(c *gin.Context) {
	path := c.Query("path")
	descriptor := navigation.Resolve(path, h.catalogService)

	resp := gin.H{"page": descriptor.Page}
	if descriptor.Product != nil {
		resp["product"] = descriptor.Product
	}
	if descriptor.Category != "" {
		resp["category"] = descriptor.Category
	}
	if descriptor.InfoPage != "" {
		resp["info_page"] = descriptor.InfoPage
	}

	c.JSON(http.StatusOK, resp)
}

// Home renders the homepage template into ordered HTML fragments.
// ?preview=true wraps each section for the theme editor overlay.
func (h *StorefrontHandler) Home(c *gin.Context) {
	preview := c.Query("preview") == "true"

	rendered, err := h.themeService.RenderHome(preview)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sections": rendered})
}
