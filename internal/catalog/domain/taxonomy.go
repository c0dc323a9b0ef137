package domain

// Category is one node of the two-level category tree. A nil ParentID marks a
// top-level category; child categories are the only ones assignable to products.
type Category struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	ParentID *uint  `json:"parent_id" gorm:"index"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// IsTopLevel reports whether the category is a parent category
func (c *Category) IsTopLevel() bool {
	return c.ParentID == nil
}

// Brand is a flat reference entity with a soft-delete flag
type Brand struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null"`
	IsDeleted bool   `json:"is_deleted" gorm:"not null;default:false"`
}

// TableName specifies the table name
func (Brand) TableName() string {
	return "brands"
}

// Store is the vendor owning a product
type Store struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	StoreName string `json:"store_name" gorm:"not null"`
}

// TableName specifies the table name
func (Store) TableName() string {
	return "stores"
}
