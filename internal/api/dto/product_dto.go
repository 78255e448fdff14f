package dto

// ProductRequest is the admin product form. Specifications is comma separated.
type ProductRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	ImageURL       string `json:"image_url" validate:"omitempty,max=2048"`
	Specifications string `json:"specifications" validate:"max=2000"`
	Price          int64  `json:"price" validate:"gte=0"`
	Description    string `json:"description" validate:"max=5000"`
}

// ProductResponse represents a catalog entry.
type ProductResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	ImageURL       string   `json:"image_url"`
	Specifications []string `json:"specifications"`
	Price          int64    `json:"price"`
	Description    string   `json:"description"`
}
