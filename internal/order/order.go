package order

// Order represents a purchase made by a user. The cart snapshot maps
// asin -> quantity at checkout time.
type Order struct {
	OrderID    int            `json:"orderId"`
	UserID     string         `json:"userId"`
	Cart       map[string]int `json:"cart"`
	Quantity   int            `json:"quantity"`
	TotalPrice float64        `json:"totalPrice"`
	Status     string         `json:"status"`
	CreatedAt  string         `json:"createdAt"`
	UpdatedAt  string         `json:"updatedAt"`
}
