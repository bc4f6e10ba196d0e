package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/models"
	"storefront-backend/internal/service"
)

type ThemeHandler struct {
	themeService *service.ThemeService
}

func NewThemeHandler(themeService *service.ThemeService) *ThemeHandler {
	return &ThemeHandler{themeService: themeService}
}

// GetTemplate returns the stored template for a key (falling back to the
// built-in home template), for the theme editor to load.
func (h *ThemeHandler) GetTemplate(c *gin.Context) {
	tmpl, err := h.themeService.Template(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"template": tmpl})
}

// SaveTemplate replaces the template stored under a key.
func (h *ThemeHandler) SaveTemplate(c *gin.Context) {
	var req models.SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tmpl, err := h.themeService.SaveTemplate(c.Param("key"), req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"template": tmpl})
}

// Sections lists the registered section types with their editor schemas.
func (h *ThemeHandler) Sections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": h.themeService.SectionLibrary()})
}

// Preview renders an unsaved template payload for the live editor.
func (h *ThemeHandler) Preview(c *gin.Context) {
	var req models.SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tmpl := &models.PageTemplate{
		Name:     req.Name,
		Sections: req.Sections,
		Order:    req.Order,
	}

	rendered := h.themeService.RenderTemplate(tmpl, true)
	c.JSON(http.StatusOK, gin.H{"sections": rendered})
}
