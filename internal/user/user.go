package user

// User mirrors the reviewer records the recommendation dataset is keyed by:
// the ID is a 26-character uppercase alphanumeric string in the same shape as
// the reviewerID values found in the review corpus.
type User struct {
	UserID        string   `json:"userId"`
	Email         string   `json:"email"`
	Password      string   `json:"password,omitempty"`
	ReviewerName  string   `json:"reviewerName"`
	Age           *int     `json:"age,omitempty"`
	Gender        string   `json:"gender"`
	Address       string   `json:"address"`
	LikedProducts []string `json:"likedProducts"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
}
