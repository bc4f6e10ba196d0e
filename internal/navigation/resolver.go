// Package navigation derives the storefront's page view descriptor from a
// URL path. Resolution is a pure function of (path, catalog snapshot):
// running it twice against the same inputs yields the same descriptor, so
// every request can re-resolve against the freshest catalog available.
package navigation

import (
	"strings"

	"storefront-backend/internal/models"
)

// PageKind enumerates the storefront's top-level views.
type PageKind string

const (
	PageHome     PageKind = "home"
	PageProduct  PageKind = "product"
	PageCategory PageKind = "category"
	PageInfo     PageKind = "info"
	PageThankYou PageKind = "thank_you"
	PageAdmin    PageKind = "admin"
)

// Descriptor is the derived view state for one URL. At most one of
// Product, Category and InfoPage is populated, consistent with Page.
// It is never persisted; it is always recomputed from the path.
type Descriptor struct {
	Page     PageKind        `json:"page"`
	Product  *models.Product `json:"product,omitempty"`
	Category string          `json:"category,omitempty"`
	InfoPage string          `json:"info_page,omitempty"`
}

// Catalog is the snapshot the resolver reads product and category
// existence from. Implementations may serve database rows or the seeded
// static fallback; the resolver does not care which.
type Catalog interface {
	ProductByHandle(handle string) (*models.Product, bool)
	HasCategory(slug string) bool
}

// Resolve maps a URL path to its page view descriptor.
//
// Unknown product handles and unknown category ids fall back to the home
// view rather than a not-found state; that mirrors the storefront's
// availability-first behavior for deep links.
func Resolve(path string, catalog Catalog) Descriptor {
	path = normalizePath(path)

	home := Descriptor{Page: PageHome}

	switch {
	case path == "/" || path == "" || path == "/index.html":
		return home

	case strings.HasPrefix(path, "/product/"):
		handle := strings.TrimPrefix(path, "/product/")
		if catalog != nil {
			if product, ok := catalog.ProductByHandle(handle); ok {
				return Descriptor{Page: PageProduct, Product: product}
			}
		}
		return home

	case strings.HasPrefix(path, "/category/"):
		slug := strings.TrimPrefix(path, "/category/")
		if catalog != nil && catalog.HasCategory(slug) {
			return Descriptor{Page: PageCategory, Category: slug}
		}
		return home

	case strings.HasPrefix(path, "/pages/"):
		// Info page identifiers are not validated against a known set;
		// an unknown type simply renders an empty info page downstream.
		infoPage := strings.TrimPrefix(path, "/pages/")
		if infoPage != "" {
			return Descriptor{Page: PageInfo, InfoPage: infoPage}
		}
		return home

	case path == "/obrigada":
		return Descriptor{Page: PageThankYou}

	case path == "/admin":
		return Descriptor{Page: PageAdmin}
	}

	return home
}

// normalizePath strips a single trailing slash, except for the root path.
func normalizePath(path string) string {
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	return path
}
