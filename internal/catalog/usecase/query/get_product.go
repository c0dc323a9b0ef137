package query

import (
	"errors"
	"fmt"

	"github.com/ispanshop/catalog-service/internal/catalog/domain"
)

// VariantDetail is one live variant of the detail view
type VariantDetail struct {
	SkuCode       string  `json:"sku_code"`
	VariantName   string  `json:"variant_name"`
	Price         float64 `json:"price"`
	Stock         int     `json:"stock"`
	SpecValueJSON string  `json:"spec_value_json"`
}

// ProductDetail is the detail-view DTO with images in presentation order and
// soft-deleted variants filtered out.
type ProductDetail struct {
	ID           uint                 `json:"id"`
	Name         string               `json:"name"`
	StoreName    string               `json:"store_name"`
	CategoryName string               `json:"category_name"`
	BrandName    string               `json:"brand_name"`
	Description  *string              `json:"description"`
	Status       domain.ProductStatus `json:"status"`
	RejectReason *string              `json:"reject_reason"`
	Images       []string             `json:"images"`
	Variants     []VariantDetail      `json:"variants"`
}

// GetProductDetailQuery represents a detail lookup by id
type GetProductDetailQuery struct {
	ID uint
}

// GetProductDetailHandler handles product detail lookups
type GetProductDetailHandler struct {
	repo domain.CatalogRepository
}

// NewGetProductDetailHandler creates a new detail handler
func NewGetProductDetailHandler(repo domain.CatalogRepository) *GetProductDetailHandler {
	return &GetProductDetailHandler{repo: repo}
}

// Handle returns domain.ErrProductNotFound when the id does not exist
func (h *GetProductDetailHandler) Handle(q GetProductDetailQuery) (*ProductDetail, error) {
	product, err := h.repo.FindProductByID(q.ID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get product detail: %w", err)
	}

	detail := &ProductDetail{
		ID:           product.ID,
		Name:         product.Name,
		StoreName:    unknownStore,
		CategoryName: unknownCategory,
		BrandName:    unknownBrand,
		Description:  product.Description,
		Status:       product.Status,
		RejectReason: product.RejectReason,
		Images:       make([]string, 0, len(product.Images)),
		Variants:     make([]VariantDetail, 0, len(product.Variants)),
	}
	if product.Store != nil {
		detail.StoreName = product.Store.StoreName
	}
	if product.Category != nil {
		detail.CategoryName = product.Category.Name
	}
	if product.Brand != nil {
		detail.BrandName = product.Brand.Name
	}

	// Repository loads images sorted and variants filtered to live ones
	for _, img := range product.Images {
		detail.Images = append(detail.Images, img.ImageURL)
	}
	for _, v := range product.Variants {
		detail.Variants = append(detail.Variants, VariantDetail{
			SkuCode:       v.SkuCode,
			VariantName:   v.VariantName,
			Price:         v.Price,
			Stock:         v.Stock,
			SpecValueJSON: v.SpecValueJSON,
		})
	}

	return detail, nil
}
