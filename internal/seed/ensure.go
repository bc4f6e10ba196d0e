package seed

import (
	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"
	"storefront-backend/pkg/logger"
)

// EnsureCategories inserts any seed category whose slug is not yet in
// the database. Existing rows are never touched.
func EnsureCategories(repo repository.CategoryRepository) {
	for _, category := range Categories() {
		exists, err := repo.ExistsBySlug(category.Slug)
		if err != nil {
			logger.Error(err, "Failed to check seed category", map[string]interface{}{"slug": category.Slug})
			continue
		}
		if exists {
			continue
		}

		c := category
		if err := repo.Create(&c); err != nil {
			logger.Error(err, "Failed to seed category", map[string]interface{}{"slug": category.Slug})
			continue
		}
		logger.Info("Seeded category", map[string]interface{}{"slug": category.Slug})
	}
}

// EnsureProducts inserts seed products that are missing, resolving their
// category association by slug.
func EnsureProducts(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) {
	for _, product := range Products() {
		exists, err := productRepo.ExistsByHandle(product.Handle)
		if err != nil {
			logger.Error(err, "Failed to check seed product", map[string]interface{}{"handle": product.Handle})
			continue
		}
		if exists {
			continue
		}

		p := product
		if category, err := categoryRepo.GetBySlug(p.Category.Slug); err == nil {
			p.CategoryID = category.ID
		}
		p.Category = models.Category{}

		if err := productRepo.Create(&p); err != nil {
			logger.Error(err, "Failed to seed product", map[string]interface{}{"handle": product.Handle})
			continue
		}
		logger.Info("Seeded product", map[string]interface{}{"handle": product.Handle})
	}
}

// EnsurePages inserts the default informational pages that are missing.
func EnsurePages(repo repository.PageRepository) {
	for _, page := range Pages() {
		exists, err := repo.ExistsByType(page.Type)
		if err != nil {
			logger.Error(err, "Failed to check seed page", map[string]interface{}{"type": page.Type})
			continue
		}
		if exists {
			continue
		}

		p := page
		if err := repo.Create(&p); err != nil {
			logger.Error(err, "Failed to seed page", map[string]interface{}{"type": page.Type})
		}
	}
}

// EnsureHomeTemplate stores the default home template if no template is
// saved under the home key yet.
func EnsureHomeTemplate(repo repository.TemplateRepository, key string) {
	exists, err := repo.ExistsByKey(key)
	if err != nil {
		logger.Error(err, "Failed to check home template", nil)
		return
	}
	if exists {
		return
	}

	if err := repo.Upsert(&models.ThemeTemplate{Key: key, Template: HomeTemplate()}); err != nil {
		logger.Error(err, "Failed to seed home template", nil)
		return
	}
	logger.Info("Seeded home template", nil)
}
