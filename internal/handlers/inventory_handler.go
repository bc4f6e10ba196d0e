package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/models"
	"storefront-backend/internal/service"
)

type InventoryHandler struct {
	catalogService *service.CatalogService
}

func NewInventoryHandler(catalogService *service.CatalogService) *InventoryHandler {
	return &InventoryHandler{catalogService: catalogService}
}

// Adjust applies a manual stock correction with an audit log entry.
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req models.InventoryAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.catalogService.AdjustInventory(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"log": entry})
}

func (h *InventoryHandler) Logs(c *gin.Context) {
	productID, _ := strconv.ParseUint(c.DefaultQuery("product_id", "0"), 10, 32)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, total, err := h.catalogService.InventoryLogs(uint(productID), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs, "total": total})
}
