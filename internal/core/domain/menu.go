package domain

// MenuItem is a single dish on the restaurant menu.
type MenuItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// Review is a customer testimonial, not tied to a user record.
type Review struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}
