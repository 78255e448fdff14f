package domain

// Hero is the landing page banner.
type Hero struct {
	Title    string
	Subtitle string
}

// About is the company blurb.
type About struct {
	Title   string
	Content string
}

// Stat is a headline figure on the landing page.
type Stat struct {
	ID    string
	Value string
	Label string
}

// Feature is a "why choose us" entry. Icon holds inline SVG markup.
type Feature struct {
	ID          string
	Icon        string
	Title       string
	Description string
}

// Testimonial is a customer quote.
type Testimonial struct {
	ID           string
	CustomerName string
	Company      string
	Text         string
}

// TestimonialDraft is the unsaved testimonial form. An empty ID means a new entry.
type TestimonialDraft struct {
	ID           string
	CustomerName string
	Company      string
	Text         string
}

// ContentDocument is the editable marketing site content.
type ContentDocument struct {
	Hero         Hero
	Stats        []Stat
	About        About
	Features     []Feature
	Testimonials []Testimonial
}

// Clone returns a copy whose slices are independent of d.
func (d ContentDocument) Clone() ContentDocument {
	out := d
	out.Stats = append([]Stat(nil), d.Stats...)
	out.Features = append([]Feature(nil), d.Features...)
	out.Testimonials = append([]Testimonial(nil), d.Testimonials...)
	return out
}
