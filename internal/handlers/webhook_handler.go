package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/service"
	"storefront-backend/internal/webhook"
	"storefront-backend/pkg/logger"
)

type WebhookHandler struct {
	verifier     *webhook.Verifier
	orderService *service.OrderService
}

func NewWebhookHandler(verifier *webhook.Verifier, orderService *service.OrderService) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, orderService: orderService}
}

// HandleOrder ingests a payment processor notification. The signature is
// checked over the raw body before any parsing. Non-payment statuses are
// acknowledged with 200 so the processor stops retrying them.
func (h *WebhookHandler) HandleOrder(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	if err := h.verifier.Verify(body, c.GetHeader(webhook.SignatureHeader)); err != nil {
		logger.Warn("Rejected webhook delivery", map[string]interface{}{"reason": err.Error()})
		status := http.StatusUnauthorized
		if errors.Is(err, webhook.ErrMissingSignature) || errors.Is(err, webhook.ErrMalformedSignature) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	var event webhook.OrderEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
		return
	}
	if event.OrderID == "" || event.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_id and status are required"})
		return
	}

	order, processed, err := h.orderService.ProcessOrderEvent(&event)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !processed {
		c.JSON(http.StatusOK, gin.H{"received": true, "processed": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true, "processed": true, "order_id": order.ExternalID})
}
