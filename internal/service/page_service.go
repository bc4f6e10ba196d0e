package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/seed"
	"storefront-backend/pkg/cache"
	"storefront-backend/pkg/validator"
)

const (
	pageCachePrefix = "page:"
	pageCacheTTL    = 10 * time.Minute
)

var ErrPageNotFound = errors.New("page not found")

// PageService serves the informational pages (/pages/<type>) and their
// admin CRUD. Content is sanitized on write, never on read.
type PageService struct {
	pageRepo repository.PageRepository
	cache    *cache.Cache
}

func NewPageService(pageRepo repository.PageRepository, cacheService *cache.Cache) *PageService {
	return &PageService{pageRepo: pageRepo, cache: cacheService}
}

// GetByType returns a published page for the storefront. Unknown types
// fall back to the seed list so the default pages render before any
// admin edits exist.
func (s *PageService) GetByType(pageType string) (*models.Page, error) {
	if s.cache != nil {
		var page models.Page
		if err := s.cache.Get(pageCachePrefix+pageType, &page); err == nil {
			return &page, nil
		}
	}

	page, err := s.pageRepo.GetByType(pageType)
	if err == nil {
		if s.cache != nil {
			s.cache.Set(pageCachePrefix+pageType, page, pageCacheTTL)
		}
		return page, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		for _, p := range seed.Pages() {
			if p.Type == pageType {
				fallback := p
				return &fallback, nil
			}
		}
	}

	return nil, ErrPageNotFound
}

func (s *PageService) GetAll() ([]models.Page, error) {
	return s.pageRepo.GetAll()
}

func (s *PageService) GetByID(id uint) (*models.Page, error) {
	return s.pageRepo.GetByID(id)
}

func (s *PageService) Create(req models.CreatePageRequest) (*models.Page, error) {
	exists, err := s.pageRepo.ExistsByType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to check page type: %w", err)
	}
	if exists {
		return nil, errors.New("page with this type already exists")
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	page := &models.Page{
		Type:      req.Type,
		Title:     req.Title,
		Content:   validator.SanitizeHTML(req.Content),
		Published: published,
	}

	if err := s.pageRepo.Create(page); err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	s.invalidate(page.Type)
	return page, nil
}

func (s *PageService) Update(id uint, req models.UpdatePageRequest) (*models.Page, error) {
	page, err := s.pageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.Content != nil {
		page.Content = validator.SanitizeHTML(*req.Content)
	}
	if req.Published != nil {
		page.Published = *req.Published
	}

	if err := s.pageRepo.Update(page); err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}

	s.invalidate(page.Type)
	return page, nil
}

func (s *PageService) Delete(id uint) error {
	page, err := s.pageRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.pageRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(page.Type)
	return nil
}

func (s *PageService) invalidate(pageType string) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(pageCachePrefix + pageType)
}
