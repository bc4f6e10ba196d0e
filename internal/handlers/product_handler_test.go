package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront-backend/internal/models"
	"storefront-backend/internal/service"
	"storefront-backend/pkg/validator"
)

type stubCouponRepo struct {
	coupons map[string]*models.Coupon
}

func (r *stubCouponRepo) Create(coupon *models.Coupon) error {
	coupon.ID = uint(len(r.coupons) + 1)
	r.coupons[coupon.Code] = coupon
	return nil
}

func (r *stubCouponRepo) GetByID(uint) (*models.Coupon, error) { return nil, gorm.ErrRecordNotFound }

func (r *stubCouponRepo) GetByCode(code string) (*models.Coupon, error) {
	if c, ok := r.coupons[code]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCouponRepo) GetAll(int, int) ([]models.Coupon, int64, error) { return nil, 0, nil }
func (r *stubCouponRepo) Update(*models.Coupon) error                     { return nil }
func (r *stubCouponRepo) Delete(uint) error                               { return nil }
func (r *stubCouponRepo) IncrementUsage(uint) error                       { return nil }

func newAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator.Init()

	catalog := service.NewCatalogService(newStubProductRepo(), stubCategoryRepo{}, stubInventoryRepo{}, nil)
	products := NewProductHandler(catalog)
	coupons := NewCouponHandler(service.NewCouponService(&stubCouponRepo{coupons: make(map[string]*models.Coupon)}))

	router := gin.New()
	router.POST("/api/admin/products", products.Create)
	router.POST("/api/admin/coupons", coupons.Create)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to encode request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateProductRejectsMalformedHandle(t *testing.T) {
	router := newAdminRouter()

	w := postJSON(t, router, "/api/admin/products", map[string]interface{}{
		"handle": "Camisa Ibiza!",
		"title":  "Camisa Ibiza",
		"price":  109.90,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed handle, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateProductAcceptsSlugHandle(t *testing.T) {
	router := newAdminRouter()

	w := postJSON(t, router, "/api/admin/products", map[string]interface{}{
		"handle": "camisa-ibiza",
		"title":  "Camisa Ibiza",
		"price":  109.90,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateProductRejectsMarkupInTitle(t *testing.T) {
	router := newAdminRouter()

	w := postJSON(t, router, "/api/admin/products", map[string]interface{}{
		"title": "<script>alert(1)</script>",
		"price": 109.90,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for markup in title, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateCouponRejectsMalformedCode(t *testing.T) {
	router := newAdminRouter()

	w := postJSON(t, router, "/api/admin/coupons", map[string]interface{}{
		"code":   "divas 10%",
		"amount": 10,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed coupon code, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateCouponAcceptsUppercaseCode(t *testing.T) {
	router := newAdminRouter()

	w := postJSON(t, router, "/api/admin/coupons", map[string]interface{}{
		"code":   "DIVAS10",
		"amount": 10,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}
