package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/a1technologies/cooling-crm/internal/domain"
)

//go:embed seed.yaml
var defaultData []byte

// Data is the fixed sample data the registries start from.
type Data struct {
	Identities      []domain.Identity
	Technicians     []domain.Technician
	Products        []domain.Product
	ServiceRequests []domain.ServiceRequest
	Content         domain.ContentDocument
}

type file struct {
	Identities []struct {
		ID    string `yaml:"id"`
		Email string `yaml:"email"`
		Name  string `yaml:"name"`
		Role  string `yaml:"role"`
	} `yaml:"identities"`
	Technicians []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"technicians"`
	Products []struct {
		ID             string   `yaml:"id"`
		Name           string   `yaml:"name"`
		ImageURL       string   `yaml:"image_url"`
		Specifications []string `yaml:"specifications"`
		Price          int64    `yaml:"price"`
		Description    string   `yaml:"description"`
	} `yaml:"products"`
	ServiceRequests []requestRecord `yaml:"service_requests"`
	Content         contentRecord   `yaml:"content"`
}

type requestRecord struct {
	ID                     string    `yaml:"id"`
	CustomerID             string    `yaml:"customer_id"`
	CustomerName           string    `yaml:"customer_name"`
	ProductName            string    `yaml:"product_name"`
	IssueDescription       string    `yaml:"issue_description"`
	Address                string    `yaml:"address"`
	Status                 string    `yaml:"status"`
	AssignedTechnicianID   string    `yaml:"assigned_technician_id"`
	AssignedTechnicianName string    `yaml:"assigned_technician_name"`
	TechnicianNotes        string    `yaml:"technician_notes"`
	Feedback               *struct {
		Rating  int    `yaml:"rating"`
		Remarks string `yaml:"remarks"`
	} `yaml:"feedback"`
	CreatedAt time.Time `yaml:"created_at"`
}

type contentRecord struct {
	Hero struct {
		Title    string `yaml:"title"`
		Subtitle string `yaml:"subtitle"`
	} `yaml:"hero"`
	Stats []struct {
		ID    string `yaml:"id"`
		Value string `yaml:"value"`
		Label string `yaml:"label"`
	} `yaml:"stats"`
	About struct {
		Title   string `yaml:"title"`
		Content string `yaml:"content"`
	} `yaml:"about"`
	Features []struct {
		ID          string `yaml:"id"`
		Icon        string `yaml:"icon"`
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	} `yaml:"features"`
	Testimonials []struct {
		ID           string `yaml:"id"`
		CustomerName string `yaml:"customer_name"`
		Company      string `yaml:"company"`
		Text         string `yaml:"text"`
	} `yaml:"testimonials"`
}

// Default returns the embedded demo data set.
func Default() (*Data, error) {
	return Parse(defaultData)
}

// Parse decodes a seed document and checks the invariants the registries rely on.
func Parse(raw []byte) (*Data, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	data := &Data{}

	emails := make(map[string]struct{}, len(f.Identities))
	for _, rec := range f.Identities {
		role := domain.Role(rec.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("identity %s: unknown role %q", rec.ID, rec.Role)
		}
		if _, dup := emails[rec.Email]; dup {
			return nil, fmt.Errorf("identity %s: duplicate email %q", rec.ID, rec.Email)
		}
		emails[rec.Email] = struct{}{}
		data.Identities = append(data.Identities, domain.Identity{ID: rec.ID, Email: rec.Email, Name: rec.Name, Role: role})
	}

	for _, rec := range f.Technicians {
		data.Technicians = append(data.Technicians, domain.Technician{ID: rec.ID, Name: rec.Name})
	}

	productIDs := make(map[string]struct{}, len(f.Products))
	for _, rec := range f.Products {
		if _, dup := productIDs[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", rec.ID)
		}
		productIDs[rec.ID] = struct{}{}
		data.Products = append(data.Products, domain.Product{
			ID:             rec.ID,
			Name:           rec.Name,
			ImageURL:       rec.ImageURL,
			Specifications: append([]string(nil), rec.Specifications...),
			Price:          rec.Price,
			Description:    rec.Description,
		})
	}

	for _, rec := range f.ServiceRequests {
		req, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		data.ServiceRequests = append(data.ServiceRequests, req)
	}

	content, err := f.Content.toDomain()
	if err != nil {
		return nil, err
	}
	data.Content = content

	return data, nil
}

func (rec requestRecord) toDomain() (domain.ServiceRequest, error) {
	status := domain.ServiceStatus(rec.Status)
	if !status.Valid() {
		return domain.ServiceRequest{}, fmt.Errorf("service request %s: unknown status %q", rec.ID, rec.Status)
	}
	if (rec.AssignedTechnicianID == "") != (rec.AssignedTechnicianName == "") {
		return domain.ServiceRequest{}, fmt.Errorf("service request %s: technician id and name must be set together", rec.ID)
	}
	if rec.Feedback != nil && status != domain.ServiceStatusSolved {
		return domain.ServiceRequest{}, fmt.Errorf("service request %s: feedback on unsolved request", rec.ID)
	}

	req := domain.ServiceRequest{
		ID:               rec.ID,
		CustomerID:       rec.CustomerID,
		CustomerName:     rec.CustomerName,
		ProductName:      rec.ProductName,
		IssueDescription: rec.IssueDescription,
		Address:          rec.Address,
		Status:           status,
		CreatedAt:        rec.CreatedAt.UTC(),
	}
	if rec.AssignedTechnicianID != "" {
		id, name := rec.AssignedTechnicianID, rec.AssignedTechnicianName
		req.AssignedTechnicianID = &id
		req.AssignedTechnicianName = &name
	}
	if rec.TechnicianNotes != "" {
		notes := rec.TechnicianNotes
		req.TechnicianNotes = &notes
	}
	if rec.Feedback != nil {
		req.Feedback = &domain.Feedback{Rating: rec.Feedback.Rating, Remarks: rec.Feedback.Remarks}
	}
	return req, nil
}

func (rec contentRecord) toDomain() (domain.ContentDocument, error) {
	doc := domain.ContentDocument{
		Hero:  domain.Hero{Title: rec.Hero.Title, Subtitle: rec.Hero.Subtitle},
		About: domain.About{Title: rec.About.Title, Content: rec.About.Content},
	}

	seen := map[string]struct{}{}
	unique := func(list, id string) error {
		key := list + "/" + id
		if _, dup := seen[key]; dup {
			return fmt.Errorf("content %s: duplicate id %q", list, id)
		}
		seen[key] = struct{}{}
		return nil
	}

	for _, s := range rec.Stats {
		if err := unique("stats", s.ID); err != nil {
			return doc, err
		}
		doc.Stats = append(doc.Stats, domain.Stat{ID: s.ID, Value: s.Value, Label: s.Label})
	}
	for _, f := range rec.Features {
		if err := unique("features", f.ID); err != nil {
			return doc, err
		}
		doc.Features = append(doc.Features, domain.Feature{ID: f.ID, Icon: f.Icon, Title: f.Title, Description: f.Description})
	}
	for _, t := range rec.Testimonials {
		if err := unique("testimonials", t.ID); err != nil {
			return doc, err
		}
		doc.Testimonials = append(doc.Testimonials, domain.Testimonial{ID: t.ID, CustomerName: t.CustomerName, Company: t.Company, Text: t.Text})
	}
	return doc, nil
}
