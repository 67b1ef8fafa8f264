package product

// Product is a catalog entry keyed by its Amazon standard identification
// number. It carries the metadata fields the recommendation responses join
// against, so the two surfaces stay consistent.
type Product struct {
	Asin          string   `json:"asin"`
	ParentAsin    string   `json:"parentAsin,omitempty"`
	Title         string   `json:"title"`
	Price         *float64 `json:"price,omitempty"`
	MainCategory  string   `json:"mainCategory,omitempty"`
	AverageRating *float64 `json:"averageRating,omitempty"`
	Images        []string `json:"images,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
}
