package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront-backend/internal/cart"
	"storefront-backend/internal/models"
	"storefront-backend/internal/service"
)

type stubProductRepo struct {
	byHandle map[string]*models.Product
}

func newStubProductRepo(products ...*models.Product) *stubProductRepo {
	repo := &stubProductRepo{byHandle: make(map[string]*models.Product)}
	for _, p := range products {
		repo.byHandle[p.Handle] = p
	}
	return repo
}

func (r *stubProductRepo) Create(product *models.Product) error {
	product.ID = uint(len(r.byHandle) + 1)
	r.byHandle[product.Handle] = product
	return nil
}

func (r *stubProductRepo) GetByID(id uint) (*models.Product, error) {
	for _, p := range r.byHandle {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) GetByHandle(handle string) (*models.Product, error) {
	if p, ok := r.byHandle[handle]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) GetByExternalID(string) (*models.Product, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) GetAll(bool) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.byHandle {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) GetByCategorySlug(string, bool) ([]models.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) Update(*models.Product) error { return nil }
func (r *stubProductRepo) Delete(uint) error            { return nil }

func (r *stubProductRepo) ExistsByHandle(handle string) (bool, error) {
	_, ok := r.byHandle[handle]
	return ok, nil
}

func (r *stubProductRepo) AdjustStock(uint, int) error { return nil }

type stubCategoryRepo struct{}

func (stubCategoryRepo) Create(*models.Category) error          { return nil }
func (stubCategoryRepo) GetByID(uint) (*models.Category, error) { return nil, gorm.ErrRecordNotFound }
func (stubCategoryRepo) GetBySlug(string) (*models.Category, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubCategoryRepo) GetAll() ([]models.Category, error) { return []models.Category{}, nil }
func (stubCategoryRepo) Update(*models.Category) error      { return nil }
func (stubCategoryRepo) Delete(uint) error                  { return nil }
func (stubCategoryRepo) ExistsBySlug(string) (bool, error)  { return false, nil }

type stubInventoryRepo struct{}

func (stubInventoryRepo) Log(*models.InventoryLog) error { return nil }
func (stubInventoryRepo) GetAll(uint, int, int) ([]models.InventoryLog, int64, error) {
	return nil, 0, nil
}

func kitProduct() *models.Product {
	return &models.Product{
		ID:     1,
		Handle: "kit-3-camisas",
		Title:  "Kit 3 Camisas",
		Price:  149.90,
		IsKit:  true,
		Sizes:  models.StringList{"P", "M", "G"},
		VariantURLs: models.StringMap{
			"M": "https://pay.example/kit-m",
		},
		Active: true,
	}
}

func newCartRouter(products ...*models.Product) *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalog := service.NewCatalogService(newStubProductRepo(products...), stubCategoryRepo{}, stubInventoryRepo{}, nil)
	handler := NewCartHandler(cart.NewStore(cart.NewMemoryStorage()), catalog)

	router := gin.New()
	router.GET("/api/cart", handler.Get)
	router.POST("/api/cart/items", handler.AddItem)
	router.GET("/api/cart/checkout", handler.CheckoutURL)
	return router
}

func addItemRequest(t *testing.T, router *gin.Engine, token string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to encode request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(CartTokenHeader, token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddItemRejectsKitWithWrongColorCount(t *testing.T) {
	router := newCartRouter(kitProduct())

	for _, colors := range [][]string{nil, {"vinho"}, {"vinho", "preto"}, {"vinho", "preto", "bege", "azul"}} {
		w := addItemRequest(t, router, "", map[string]interface{}{
			"handle": "kit-3-camisas",
			"size":   "M",
			"colors": colors,
		})
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for kit with %d colors, got %d: %s", len(colors), w.Code, w.Body.String())
		}
	}
}

func TestAddItemAcceptsKitWithThreeColors(t *testing.T) {
	router := newCartRouter(kitProduct())

	w := addItemRequest(t, router, "", map[string]interface{}{
		"handle": "kit-3-camisas",
		"size":   "M",
		"colors": []string{"vinho", "preto", "bege"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	token := w.Header().Get(CartTokenHeader)
	if token == "" {
		t.Fatalf("expected cart token issued in response header")
	}

	var resp struct {
		Items []cart.Item `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected one cart item, got %d", len(resp.Items))
	}
	item := resp.Items[0]
	if item.Size != "M" || len(item.Colors) != 3 || item.Quantity != 1 {
		t.Fatalf("unexpected cart item: %+v", item)
	}

	checkoutReq := httptest.NewRequest(http.MethodGet, "/api/cart/checkout", nil)
	checkoutReq.Header.Set(CartTokenHeader, token)
	checkout := httptest.NewRecorder()
	router.ServeHTTP(checkout, checkoutReq)

	if checkout.Code != http.StatusOK {
		t.Fatalf("expected 200 from checkout, got %d: %s", checkout.Code, checkout.Body.String())
	}
	var checkoutResp struct {
		CheckoutURL string `json:"checkout_url"`
	}
	if err := json.Unmarshal(checkout.Body.Bytes(), &checkoutResp); err != nil {
		t.Fatalf("failed to decode checkout response: %v", err)
	}
	if checkoutResp.CheckoutURL != "https://pay.example/kit-m" {
		t.Fatalf("expected size M variant URL, got %s", checkoutResp.CheckoutURL)
	}
}

func TestAddItemNonKitWithoutColors(t *testing.T) {
	router := newCartRouter(&models.Product{
		ID:     2,
		Handle: "vestido-ipanema",
		Title:  "Vestido Ipanema",
		Price:  89.90,
		Active: true,
	})

	w := addItemRequest(t, router, "", map[string]interface{}{
		"handle": "vestido-ipanema",
		"size":   "G",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for non-kit without colors, got %d: %s", w.Code, w.Body.String())
	}
}
