package domain

// CatalogRepository defines the contract for catalog data access. It is the
// only gateway the moderation and search logic use to reach the store.
type CatalogRepository interface {
	FindProductByID(id uint) (*Product, error)
	ListFiltered(criteria SearchCriteria) ([]Product, int64, error)
	// InsertProduct writes the product together with its variants and images
	// as one unit.
	InsertProduct(product *Product) error
	// UpdateStatus returns the number of rows affected; 0 means the id does
	// not exist.
	UpdateStatus(id uint, status ProductStatus, reason *string) (int64, error)
	// UpdateStatusBatch applies status to every id and returns the affected
	// row count. An empty id set is a no-op returning 0.
	UpdateStatusBatch(ids []uint, status ProductStatus) (int64, error)
	SkuExists(code string) (bool, error)
	ListByStatus(status ProductStatus, orderByUpdatedDesc bool, limit int) ([]Product, error)

	ListCategories() ([]Category, error)
	ListBrands(activeOnly bool) ([]Brand, error)
	// ListBrandsForCategory returns the distinct brands appearing among the
	// products of a category, sorted by name. A nil category id means all
	// brands.
	ListBrandsForCategory(categoryID *uint) ([]Brand, error)
	ListStores() ([]Store, error)
}
