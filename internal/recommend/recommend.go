// Package recommend implements the aspect-based content recommender, the
// demographic cold-start recommender and the retrain threshold check.
package recommend

// Item is one ranked entry in a content-based recommendation response.
// The metadata fields are only present when the catalog file knows the asin.
type Item struct {
	Rank       int      `json:"rank"`
	Asin       string   `json:"asin"`
	Score      float64  `json:"score"`
	Similarity float64  `json:"similarity"`
	TopAspects []string `json:"top_aspects"`

	Title     *string  `json:"title,omitempty"`
	Price     any      `json:"price,omitempty"`
	Category  *string  `json:"category,omitempty"`
	AvgRating *float64 `json:"avg_rating,omitempty"`
	Images    []any    `json:"images,omitempty"`
}

// Result is the content-based recommendation response. Expected-empty
// conditions (no data, unknown user, no aspect columns) come back as a
// successful Result with an explanatory Message, never as an error.
type Result struct {
	UserID          string `json:"userId"`
	Recommendations []Item `json:"recommendations"`
	Message         string `json:"message,omitempty"`
}

// ItemStats summarizes the similar-user cohort's interactions with one item.
type ItemStats struct {
	UserOverlap int     `json:"userOverlap"`
	Reviews     int     `json:"reviews"`
	AvgRating   float64 `json:"avgRating"`
}

// DemographicItem is one ranked entry in a cold-start response.
type DemographicItem struct {
	Asin  string    `json:"asin"`
	Score float64   `json:"score"`
	Stats ItemStats `json:"stats"`
}

// DemographicInputs echoes the demographic attributes the caller supplied.
type DemographicInputs struct {
	Age     *float64 `json:"age"`
	Gender  string   `json:"gender"`
	Address string   `json:"address"`
}

// DemographicResult is the cold-start recommendation response.
type DemographicResult struct {
	Strategy        string             `json:"strategy"`
	Message         string             `json:"message"`
	Recommendations []DemographicItem  `json:"recommendations"`
	Statistics      map[string]int     `json:"statistics"`
	Inputs          *DemographicInputs `json:"inputs,omitempty"`
}
