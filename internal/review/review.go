package review

// Review is a product review written by a registered user. Reviews written
// through the API feed the same table the retrain-threshold check counts.
type Review struct {
	ID        int     `json:"reviewId"`
	UserID    string  `json:"userId"`
	Asin      string  `json:"asin"`
	Overall   float64 `json:"overall"`
	Summary   string  `json:"summary,omitempty"`
	Text      string  `json:"reviewText"`
	CreatedAt string  `json:"createdAt,omitempty"`
}
