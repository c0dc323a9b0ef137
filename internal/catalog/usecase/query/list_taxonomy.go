package query

import (
	"fmt"

	"github.com/ispanshop/catalog-service/internal/catalog/domain"
)

// CategoryItem is one node of the two-level category tree; callers split the
// flat list by ParentID == nil.
type CategoryItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	ParentID *uint  `json:"parent_id"`
}

// ReferenceItem is a flat (id, name) pair for brands and stores
type ReferenceItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ListTaxonomyHandler serves the enumerations behind admin filter dropdowns
type ListTaxonomyHandler struct {
	repo domain.CatalogRepository
}

// NewListTaxonomyHandler creates a new taxonomy handler
func NewListTaxonomyHandler(repo domain.CatalogRepository) *ListTaxonomyHandler {
	return &ListTaxonomyHandler{repo: repo}
}

// Categories returns the full flat category list, both hierarchy levels
func (h *ListTaxonomyHandler) Categories() ([]CategoryItem, error) {
	categories, err := h.repo.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	items := make([]CategoryItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, CategoryItem{ID: c.ID, Name: c.Name, ParentID: c.ParentID})
	}
	return items, nil
}

// Brands returns the distinct active brands
func (h *ListTaxonomyHandler) Brands() ([]ReferenceItem, error) {
	brands, err := h.repo.ListBrands(true)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}

	items := make([]ReferenceItem, 0, len(brands))
	for _, b := range brands {
		items = append(items, ReferenceItem{ID: b.ID, Name: b.Name})
	}
	return items, nil
}

// BrandsForCategory returns the brands appearing among a category's
// products, sorted by name; a nil id means all brands.
func (h *ListTaxonomyHandler) BrandsForCategory(categoryID *uint) ([]ReferenceItem, error) {
	brands, err := h.repo.ListBrandsForCategory(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands for category: %w", err)
	}

	items := make([]ReferenceItem, 0, len(brands))
	for _, b := range brands {
		items = append(items, ReferenceItem{ID: b.ID, Name: b.Name})
	}
	return items, nil
}

// Stores returns all stores
func (h *ListTaxonomyHandler) Stores() ([]ReferenceItem, error) {
	stores, err := h.repo.ListStores()
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	items := make([]ReferenceItem, 0, len(stores))
	for _, s := range stores {
		items = append(items, ReferenceItem{ID: s.ID, Name: s.StoreName})
	}
	return items, nil
}
