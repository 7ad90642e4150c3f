package engine

import "petrack/internal/storage"

// The shop catalog is static content, mirroring the original's item list.
// Quantity on a catalog entry is the pack size granted per purchase.
var catalog = []storage.Item{
	{
		ID:          1,
		Name:        "Premium Bone Treat",
		Category:    string(CategoryFood),
		Price:       50,
		Description: "A high-quality bone treat that your pet will love!",
		Quantity:    1,
	},
	{
		ID:          2,
		Name:        "Squeaky Ball",
		Category:    string(CategoryToy),
		Price:       75,
		Description: "A bouncy ball that makes fun sounds when played with.",
		Quantity:    1,
	},
	{
		ID:          3,
		Name:        "Health Potion",
		Category:    string(CategoryMedicine),
		Price:       100,
		Description: "Instantly restores a large amount of health.",
		Quantity:    1,
	},
	{
		ID:          4,
		Name:        "Fancy Collar",
		Category:    string(CategoryAccessory),
		Price:       200,
		Description: "A stylish collar that makes your pet look distinguished.",
		Quantity:    1,
	},
	{
		ID:          5,
		Name:        "Gourmet Treats Pack",
		Category:    string(CategoryFood),
		Price:       150,
		Description: "A variety pack of premium treats.",
		Quantity:    3,
	},
	{
		ID:          6,
		Name:        "Interactive Puzzle Toy",
		Category:    string(CategoryToy),
		Price:       125,
		Description: "Keeps your pet entertained and mentally stimulated.",
		Quantity:    1,
	},
}

// Catalog returns the shop items in display order.
func Catalog() []storage.Item {
	out := make([]storage.Item, len(catalog))
	copy(out, catalog)
	return out
}

// CatalogItem returns the catalog entry with the given id, or nil.
func CatalogItem(id int64) *storage.Item {
	for i := range catalog {
		if catalog[i].ID == id {
			item := catalog[i]
			return &item
		}
	}
	return nil
}
