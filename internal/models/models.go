package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// StringList is a JSONB-backed ordered list of strings (image URLs, size codes).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringList")
	}

	return json.Unmarshal(bytes, l)
}

// StringMap is a JSONB-backed string-to-string mapping (per-size checkout URLs).
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *StringMap) Scan(value interface{}) error {
	if value == nil {
		*m = StringMap{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringMap")
	}

	return json.Unmarshal(bytes, m)
}

// JSONMap is a JSONB-backed free-form object (webhook payloads, event data).
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan JSONMap")
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(bytes, &decoded); err != nil {
		return err
	}

	*m = decoded
	return nil
}

type Product struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Handle      string `gorm:"uniqueIndex;not null" json:"handle"`
	ExternalID  string `gorm:"index" json:"external_id,omitempty"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	Price        float64 `gorm:"not null" json:"price"`
	OldPrice     float64 `json:"old_price"`
	Installments string  `json:"installments"`

	Images StringList `gorm:"type:jsonb" json:"images"`
	Sizes  StringList `gorm:"type:jsonb" json:"sizes"`

	IsKit       bool      `gorm:"default:false" json:"is_kit"`
	CheckoutURL string    `json:"checkout_url,omitempty"`
	VariantURLs StringMap `gorm:"type:jsonb" json:"variant_urls,omitempty"`

	Stock  int  `gorm:"default:0" json:"stock"`
	Active bool `gorm:"default:true" json:"active"`

	CategoryID uint     `json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category"`
}

// CheckoutURLForSize resolves the external payment URL for a chosen size.
// Per-size variant URLs win over the product-wide checkout URL.
func (p *Product) CheckoutURLForSize(size string) string {
	if p == nil {
		return ""
	}
	if url, ok := p.VariantURLs[size]; ok && url != "" {
		return url
	}
	return p.CheckoutURL
}

type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Slug  string `gorm:"uniqueIndex;not null" json:"slug"`
	Name  string `gorm:"not null" json:"name"`
	Image string `json:"image"`
	Order int    `gorm:"default:0" json:"order"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

// Page is an informational page addressed by its type slug
// (trust, about, exchanges, tracking, privacy, shipping, refund, legal, terms, contact).
type Page struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Type      string `gorm:"uniqueIndex;not null" json:"type"`
	Title     string `gorm:"not null" json:"title"`
	Content   string `gorm:"type:text" json:"content"`
	Published bool   `gorm:"default:true" json:"published"`
}

type AdminUser struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"type:varchar(32);default:'admin'" json:"role"`
}

type Order struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ExternalID    string      `gorm:"uniqueIndex;not null" json:"external_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Total         float64     `json:"total"`
	Status        string      `gorm:"default:'pending'" json:"status"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	EventID       string      `gorm:"index" json:"event_id,omitempty"`
	TrackingCode  string      `json:"tracking_code,omitempty"`
}

type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Size      string  `json:"size"`
	Quantity  int     `gorm:"default:1" json:"quantity"`
	Price     float64 `json:"price"`
}

type Coupon struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Code         string     `gorm:"uniqueIndex;not null" json:"code"`
	DiscountType string     `gorm:"type:varchar(16);default:'percent'" json:"discount_type"`
	Amount       float64    `gorm:"not null" json:"amount"`
	Active       bool       `gorm:"default:true" json:"active"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	UsageLimit   int        `gorm:"default:0" json:"usage_limit"`
	UsedCount    int        `gorm:"default:0" json:"used_count"`
}

type InventoryLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ProductID    uint   `gorm:"index;not null" json:"product_id"`
	ChangeAmount int    `gorm:"not null" json:"change_amount"`
	Reason       string `gorm:"not null" json:"reason"`
	OrderID      *uint  `json:"order_id,omitempty"`
}

// ServerEvent is a queued server-side conversion event produced by webhook
// ingestion and drained by the background dispatcher.
type ServerEvent struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	EventName string  `gorm:"not null" json:"event_name"`
	EventID   string  `gorm:"uniqueIndex;not null" json:"event_id"`
	Status    string  `gorm:"default:'pending';index" json:"status"`
	Payload   JSONMap `gorm:"type:jsonb" json:"payload"`
	Attempts  int     `gorm:"default:0" json:"attempts"`
	LastError string  `json:"last_error,omitempty"`
}

type Setting struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  *AdminUser `json:"user"`
}

type CreateProductRequest struct {
	Handle       string            `json:"handle" binding:"omitempty,handle"`
	ExternalID   string            `json:"external_id"`
	Title        string            `json:"title" binding:"required,no_html"`
	Description  string            `json:"description"`
	Price        float64           `json:"price" binding:"required,gt=0"`
	OldPrice     float64           `json:"old_price"`
	Installments string            `json:"installments"`
	Images       []string          `json:"images"`
	Sizes        []string          `json:"sizes"`
	IsKit        bool              `json:"is_kit"`
	CheckoutURL  string            `json:"checkout_url"`
	VariantURLs  map[string]string `json:"variant_urls"`
	Stock        int               `json:"stock"`
	Active       *bool             `json:"active"`
	CategoryID   uint              `json:"category_id"`
}

type UpdateProductRequest struct {
	Handle       *string            `json:"handle" binding:"omitempty,handle"`
	ExternalID   *string            `json:"external_id"`
	Title        *string            `json:"title" binding:"omitempty,no_html"`
	Description  *string            `json:"description"`
	Price        *float64           `json:"price"`
	OldPrice     *float64           `json:"old_price"`
	Installments *string            `json:"installments"`
	Images       *[]string          `json:"images"`
	Sizes        *[]string          `json:"sizes"`
	IsKit        *bool              `json:"is_kit"`
	CheckoutURL  *string            `json:"checkout_url"`
	VariantURLs  *map[string]string `json:"variant_urls"`
	Stock        *int               `json:"stock"`
	Active       *bool              `json:"active"`
	CategoryID   *uint              `json:"category_id"`
}

type CreateCategoryRequest struct {
	Slug  string `json:"slug" binding:"omitempty,handle"`
	Name  string `json:"name" binding:"required,no_html"`
	Image string `json:"image"`
	Order int    `json:"order"`
}

type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
	Order *int    `json:"order"`
}

type CreatePageRequest struct {
	Type      string `json:"type" binding:"required,handle"`
	Title     string `json:"title" binding:"required,no_html"`
	Content   string `json:"content"`
	Published *bool  `json:"published"`
}

type UpdatePageRequest struct {
	Title     *string `json:"title" binding:"omitempty,no_html"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

type CreateCouponRequest struct {
	Code         string     `json:"code" binding:"required,coupon_code"`
	DiscountType string     `json:"discount_type"`
	Amount       float64    `json:"amount" binding:"required,gt=0"`
	Active       *bool      `json:"active"`
	ExpiresAt    *time.Time `json:"expires_at"`
	UsageLimit   int        `json:"usage_limit"`
}

type UpdateCouponRequest struct {
	DiscountType *string    `json:"discount_type"`
	Amount       *float64   `json:"amount"`
	Active       *bool      `json:"active"`
	ExpiresAt    *time.Time `json:"expires_at"`
	UsageLimit   *int       `json:"usage_limit"`
}

type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type InventoryAdjustmentRequest struct {
	ProductID    uint   `json:"product_id" binding:"required"`
	ChangeAmount int    `json:"change_amount" binding:"required"`
	Reason       string `json:"reason" binding:"required"`
}

type UpdateTrackingRequest struct {
	TrackingCode string `json:"tracking_code" binding:"required"`
}

type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}
