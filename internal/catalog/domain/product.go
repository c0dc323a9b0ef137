package domain

import (
	"errors"
	"time"
)

// ProductStatus governs whether a product is visible to buyers
type ProductStatus int

const (
	StatusUnlisted      ProductStatus = 0 // hidden from buyers
	StatusPublished     ProductStatus = 1 // visible to buyers
	StatusPendingReview ProductStatus = 2 // awaiting human review
	StatusRejected      ProductStatus = 3 // failed moderation
)

// String returns a human readable status name
func (s ProductStatus) String() string {
	switch s {
	case StatusUnlisted:
		return "unlisted"
	case StatusPublished:
		return "published"
	case StatusPendingReview:
		return "pending_review"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// IsValid reports whether s is one of the known statuses
func (s ProductStatus) IsValid() bool {
	return s >= StatusUnlisted && s <= StatusRejected
}

// ErrProductNotFound signals an absent product, distinguishable from an empty list
var ErrProductNotFound = errors.New("product not found")

// Product is the catalog aggregate root
type Product struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	StoreID      uint          `json:"store_id" gorm:"not null;index"`
	CategoryID   uint          `json:"category_id" gorm:"not null;index"`
	BrandID      uint          `json:"brand_id" gorm:"not null;index"`
	Name         string        `json:"name" gorm:"not null"`
	Description  *string       `json:"description"`
	Status       ProductStatus `json:"status" gorm:"type:smallint;not null;default:0;index"`
	MinPrice     *float64      `json:"min_price"`
	MaxPrice     *float64      `json:"max_price"`
	RejectReason *string       `json:"reject_reason"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	Store    *Store           `json:"-" gorm:"foreignKey:StoreID"`
	Category *Category        `json:"-" gorm:"foreignKey:CategoryID"`
	Brand    *Brand           `json:"-" gorm:"foreignKey:BrandID"`
	Variants []ProductVariant `json:"variants" gorm:"constraint:OnDelete:CASCADE"`
	Images   []ProductImage   `json:"images" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// MainImageURL picks the main image, falling back to the first one by sort order
func (p *Product) MainImageURL() string {
	for _, img := range p.Images {
		if img.IsMain {
			return img.ImageURL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].ImageURL
	}
	return PlaceholderImageURL
}

// PlaceholderImageURL is served when a product has no images yet
const PlaceholderImageURL = "https://via.placeholder.com/400x400?text=No+Image"

// ProductVariant is one purchasable variation of a product, owned by it exclusively
type ProductVariant struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	ProductID     uint    `json:"product_id" gorm:"not null;index"`
	SkuCode       string  `json:"sku_code" gorm:"not null;uniqueIndex"`
	VariantName   string  `json:"variant_name" gorm:"not null"`
	SpecValueJSON string  `json:"spec_value_json"`
	Price         float64 `json:"price" gorm:"not null"`
	Stock         int     `json:"stock" gorm:"not null;default:0"`
	SafetyStock   int     `json:"safety_stock" gorm:"not null;default:0"`
	IsDeleted     bool    `json:"is_deleted" gorm:"not null;default:false"`
}

// TableName specifies the table name
func (ProductVariant) TableName() string {
	return "product_variants"
}

// ProductImage is a presentation image owned by a product
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProductID uint   `json:"product_id" gorm:"not null;index"`
	ImageURL  string `json:"image_url" gorm:"not null"`
	IsMain    bool   `json:"is_main" gorm:"not null;default:false"`
	SortOrder int    `json:"sort_order" gorm:"not null;default:0"`
}

// TableName specifies the table name
func (ProductImage) TableName() string {
	return "product_images"
}
