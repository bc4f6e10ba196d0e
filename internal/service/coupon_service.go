package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"
)

var (
	ErrCouponNotFound  = errors.New("coupon not found")
	ErrCouponInactive  = errors.New("coupon is not active")
	ErrCouponExpired   = errors.New("coupon has expired")
	ErrCouponExhausted = errors.New("coupon usage limit reached")
)

type CouponService struct {
	couponRepo repository.CouponRepository
}

func NewCouponService(couponRepo repository.CouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

// Validate checks a code for storefront use and counts the redemption.
func (s *CouponService) Validate(code string) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByCode(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, ErrCouponNotFound
	}

	if !coupon.Active {
		return nil, ErrCouponInactive
	}
	if coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(time.Now()) {
		return nil, ErrCouponExpired
	}
	if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
		return nil, ErrCouponExhausted
	}

	if err := s.couponRepo.IncrementUsage(coupon.ID); err != nil {
		return nil, fmt.Errorf("failed to count coupon use: %w", err)
	}
	coupon.UsedCount++

	return coupon, nil
}

func (s *CouponService) GetAll(limit, offset int) ([]models.Coupon, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.couponRepo.GetAll(limit, offset)
}

func (s *CouponService) GetByID(id uint) (*models.Coupon, error) {
	return s.couponRepo.GetByID(id)
}

func (s *CouponService) Create(req models.CreateCouponRequest) (*models.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	if existing, err := s.couponRepo.GetByCode(code); err == nil && existing != nil {
		return nil, errors.New("coupon with this code already exists")
	}

	discountType := req.DiscountType
	if discountType == "" {
		discountType = "percent"
	}
	if discountType != "percent" && discountType != "amount" {
		return nil, errors.New("discount_type must be percent or amount")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	coupon := &models.Coupon{
		Code:         code,
		DiscountType: discountType,
		Amount:       req.Amount,
		Active:       active,
		ExpiresAt:    req.ExpiresAt,
		UsageLimit:   req.UsageLimit,
	}

	if err := s.couponRepo.Create(coupon); err != nil {
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}
	return coupon, nil
}

func (s *CouponService) Update(id uint, req models.UpdateCouponRequest) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.DiscountType != nil {
		if *req.DiscountType != "percent" && *req.DiscountType != "amount" {
			return nil, errors.New("discount_type must be percent or amount")
		}
		coupon.DiscountType = *req.DiscountType
	}
	if req.Amount != nil {
		coupon.Amount = *req.Amount
	}
	if req.Active != nil {
		coupon.Active = *req.Active
	}
	if req.ExpiresAt != nil {
		coupon.ExpiresAt = req.ExpiresAt
	}
	if req.UsageLimit != nil {
		coupon.UsageLimit = *req.UsageLimit
	}

	if err := s.couponRepo.Update(coupon); err != nil {
		return nil, fmt.Errorf("failed to update coupon: %w", err)
	}
	return coupon, nil
}

func (s *CouponService) Delete(id uint) error {
	return s.couponRepo.Delete(id)
}
