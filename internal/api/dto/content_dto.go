package dto

// HeroRequest replaces the landing banner.
type HeroRequest struct {
	Title    string `json:"title" validate:"max=300"`
	Subtitle string `json:"subtitle" validate:"max=2000"`
}

// AboutRequest replaces the about section.
type AboutRequest struct {
	Title   string `json:"title" validate:"max=300"`
	Content string `json:"content" validate:"max=10000"`
}

// StatRequest is one headline figure.
type StatRequest struct {
	ID    string `json:"id" validate:"required"`
	Value string `json:"value" validate:"max=50"`
	Label string `json:"label" validate:"max=200"`
}

// ReplaceStatsRequest swaps the whole stats list.
type ReplaceStatsRequest struct {
	Stats []StatRequest `json:"stats" validate:"dive"`
}

// FeatureRequest is one feature card.
type FeatureRequest struct {
	ID          string `json:"id" validate:"required"`
	Icon        string `json:"icon" validate:"max=5000"`
	Title       string `json:"title" validate:"max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// ReplaceFeaturesRequest swaps the whole features list.
type ReplaceFeaturesRequest struct {
	Features []FeatureRequest `json:"features" validate:"dive"`
}

// TestimonialRequest upserts a testimonial. An empty id adds a new entry.
type TestimonialRequest struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name" validate:"required,max=200"`
	Company      string `json:"company" validate:"max=200"`
	Text         string `json:"text" validate:"required,max=2000"`
}

// HeroResponse section.
type HeroResponse struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// AboutResponse section.
type AboutResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// StatResponse entry.
type StatResponse struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// FeatureResponse entry.
type FeatureResponse struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TestimonialResponse entry.
type TestimonialResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Company      string `json:"company"`
	Text         string `json:"text"`
}

// ContentResponse is the whole site content document.
type ContentResponse struct {
	Hero         HeroResponse          `json:"hero"`
	Stats        []StatResponse        `json:"stats"`
	About        AboutResponse         `json:"about"`
	Features     []FeatureResponse     `json:"features"`
	Testimonials []TestimonialResponse `json:"testimonials"`
}
