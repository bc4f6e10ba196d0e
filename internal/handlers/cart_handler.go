package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront-backend/internal/cart"
	"storefront-backend/internal/service"
)

// CartTokenHeader carries the anonymous cart identifier. The server
// issues one on first contact; the client echoes it on every cart call.
const CartTokenHeader = "X-Cart-Token"

// kitColorCount is how many colors a kit purchase must pick.
const kitColorCount = 3

type AddCartItemRequest struct {
	Handle   string   `json:"handle" binding:"required"`
	Size     string   `json:"size"`
	Colors   []string `json:"colors"`
	Quantity int      `json:"quantity"`
}

type CartHandler struct {
	store          *cart.Store
	catalogService *service.CatalogService
}

func NewCartHandler(store *cart.Store, catalogService *service.CatalogService) *CartHandler {
	return &CartHandler{store: store, catalogService: catalogService}
}

func (h *CartHandler) token(c *gin.Context) string {
	token := c.GetHeader(CartTokenHeader)
	if token == "" {
		token = uuid.NewString()
	}
	c.Header(CartTokenHeader, token)
	return token
}

func (h *CartHandler) Get(c *gin.Context) {
	token := h.token(c)
	c.JSON(http.StatusOK, gin.H{"token": token, "items": h.store.Items(token)})
}

// AddItem replaces the cart with the given item. The store sells a
// single line at a time; adding always swaps out whatever was there.
func (h *CartHandler) AddItem(c *gin.Context) {
	token := h.token(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, ok := h.catalogService.ProductByHandle(req.Handle)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	// Kits are sold as a fixed bundle of three pieces, one color each.
	if product.IsKit && len(req.Colors) != kitColorCount {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "kit products require exactly 3 colors"})
		return
	}

	items := h.store.Add(token, cart.Item{
		Product:  *product,
		Size:     req.Size,
		Colors:   req.Colors,
		Quantity: req.Quantity,
	})

	c.JSON(http.StatusOK, gin.H{"token": token, "items": items})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	token := h.token(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item index"})
		return
	}

	items, err := h.store.RemoveAt(token, index)
	if err != nil {
		if errors.Is(err, cart.ErrIndexOutOfRange) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "items": items})
}

func (h *CartHandler) Clear(c *gin.Context) {
	token := h.token(c)
	h.store.Clear(token)
	c.JSON(http.StatusOK, gin.H{"token": token, "items": []cart.Item{}})
}

// CheckoutURL resolves the external payment link for the cart's item.
// Per-size variant URLs win over the product-wide link.
func (h *CartHandler) CheckoutURL(c *gin.Context) {
	token := h.token(c)

	items := h.store.Items(token)
	if len(items) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cart is empty"})
		return
	}

	item := items[0]
	url := item.Product.CheckoutURLForSize(item.Size)
	if url == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "product has no checkout link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkout_url": url})
}
