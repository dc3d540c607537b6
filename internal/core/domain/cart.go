package domain

// CartItem is a menu item placed in a customer's cart. Email scopes
// retrieval and deletion; there is no invariant tying it to a user record.
type CartItem struct {
	ID         string  `json:"id"`
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
	Email      string  `json:"email"`
}
