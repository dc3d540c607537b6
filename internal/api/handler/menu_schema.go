package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createMenuItemRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Recipe   string  `json:"recipe"   validate:"required"`
	Image    string  `json:"image"    validate:"required"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
}

type createReviewRequest struct {
	Name    string  `json:"name"    validate:"required"`
	Details string  `json:"details" validate:"required"`
	Rating  float64 `json:"rating"  validate:"required,gt=0,max=5"`
}
