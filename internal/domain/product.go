package domain

// Product is a catalog entry.
type Product struct {
	ID             string
	Name           string
	ImageURL       string
	Specifications []string
	Price          int64
	Description    string
}

// ProductDraft is the unsaved admin form for a product. Specifications is the raw
// comma-separated input.
type ProductDraft struct {
	Name           string
	ImageURL       string
	Specifications string
	Price          int64
	Description    string
}

// Clone returns a copy whose specification slice is independent of p.
func (p Product) Clone() Product {
	out := p
	out.Specifications = append([]string(nil), p.Specifications...)
	return out
}
