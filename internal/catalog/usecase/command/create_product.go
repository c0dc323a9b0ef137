package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/ispanshop/catalog-service/internal/catalog/domain"
	"github.com/ispanshop/catalog-service/internal/catalog/moderation"
	"github.com/ispanshop/catalog-service/internal/catalog/sku"
)

// maxSkuAttempts bounds regeneration when a generated code collides with an
// existing one. The SkuExists check is the authoritative guard.
const maxSkuAttempts = 5

// VariantInput carries one variant of a creation request
type VariantInput struct {
	SkuCode       string
	VariantName   string
	SpecValueJSON string
	Price         float64
	Stock         int
	SafetyStock   int
}

// ImageInput carries one image of a creation request
type ImageInput struct {
	ImageURL  string
	IsMain    bool
	SortOrder int
}

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	StoreID     uint
	CategoryID  uint
	BrandID     uint
	Name        string
	Description *string
	Variants    []VariantInput
	Images      []ImageInput
}

// CreateProductHandler handles product creation: validation, price range,
// SKU assignment, initial moderation status, and a single insert.
type CreateProductHandler struct {
	repo   domain.CatalogRepository
	skuGen sku.Generator
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.CatalogRepository, skuGen sku.Generator) *CreateProductHandler {
	return &CreateProductHandler{repo: repo, skuGen: skuGen}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	// Validation
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, fmt.Errorf("product name is required")
	}
	for _, v := range cmd.Variants {
		if v.Price < 0 {
			return nil, fmt.Errorf("variant price cannot be negative")
		}
		if v.Stock < 0 {
			return nil, fmt.Errorf("variant stock cannot be negative")
		}
	}

	now := time.Now()
	product := &domain.Product{
		StoreID:     cmd.StoreID,
		CategoryID:  cmd.CategoryID,
		BrandID:     cmd.BrandID,
		Name:        cmd.Name,
		Description: cmd.Description,
		Status:      moderation.Evaluate(cmd.Name, cmd.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if len(cmd.Variants) > 0 {
		minPrice := cmd.Variants[0].Price
		maxPrice := cmd.Variants[0].Price
		for _, v := range cmd.Variants[1:] {
			if v.Price < minPrice {
				minPrice = v.Price
			}
			if v.Price > maxPrice {
				maxPrice = v.Price
			}
		}
		product.MinPrice = &minPrice
		product.MaxPrice = &maxPrice

		variants, err := h.buildVariants(cmd.Variants)
		if err != nil {
			return nil, err
		}
		product.Variants = variants
	}

	product.Images = buildImages(cmd.Images)

	if err := h.repo.InsertProduct(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// buildVariants resolves SKU codes, generating one per variant that arrives
// without a code. Every code is checked against the store before the insert.
func (h *CreateProductHandler) buildVariants(inputs []VariantInput) ([]domain.ProductVariant, error) {
	seen := make(map[string]bool, len(inputs))
	variants := make([]domain.ProductVariant, 0, len(inputs))

	for _, input := range inputs {
		code := strings.TrimSpace(input.SkuCode)

		if code == "" {
			generated, err := h.generateSku(seen)
			if err != nil {
				return nil, err
			}
			code = generated
		} else {
			exists, err := h.repo.SkuExists(code)
			if err != nil {
				return nil, fmt.Errorf("failed to check sku code: %w", err)
			}
			if exists || seen[code] {
				return nil, fmt.Errorf("sku code already exists: %s", code)
			}
		}
		seen[code] = true

		variants = append(variants, domain.ProductVariant{
			SkuCode:       code,
			VariantName:   input.VariantName,
			SpecValueJSON: input.SpecValueJSON,
			Price:         input.Price,
			Stock:         input.Stock,
			SafetyStock:   input.SafetyStock,
		})
	}

	return variants, nil
}

func (h *CreateProductHandler) generateSku(seen map[string]bool) (string, error) {
	for attempt := 0; attempt < maxSkuAttempts; attempt++ {
		code := h.skuGen.Next()
		if seen[code] {
			continue
		}
		exists, err := h.repo.SkuExists(code)
		if err != nil {
			return "", fmt.Errorf("failed to check sku code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique sku code after %d attempts", maxSkuAttempts)
}

// buildImages keeps at most one main image; the first one wins
func buildImages(inputs []ImageInput) []domain.ProductImage {
	images := make([]domain.ProductImage, 0, len(inputs))
	mainSeen := false
	for _, input := range inputs {
		isMain := input.IsMain && !mainSeen
		if isMain {
			mainSeen = true
		}
		images = append(images, domain.ProductImage{
			ImageURL:  input.ImageURL,
			IsMain:    isMain,
			SortOrder: input.SortOrder,
		})
	}
	return images
}
