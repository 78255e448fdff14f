package dto

// ViewResponse is the payload of a resolved page: which view it is, who is looking, and the
// registry slices that view reads.
type ViewResponse struct {
	View   string            `json:"view"`
	Panel  string            `json:"panel,omitempty"`
	User   *IdentityResponse `json:"user,omitempty"`
	Params map[string]string `json:"params,omitempty"`
	Data   any               `json:"data"`
}

// LandingData feeds the public landing view.
type LandingData struct {
	Content  ContentResponse   `json:"content"`
	Products []ProductResponse `json:"products"`
}

// LoginData feeds the login view.
type LoginData struct {
	DemoAccounts []DemoAccount `json:"demo_accounts"`
}

// AdminDashboardData feeds the admin dashboard tabs.
type AdminDashboardData struct {
	ServiceRequests []ServiceRequestResponse `json:"service_requests"`
	Technicians     []TechnicianResponse     `json:"technicians"`
	Products        []ProductResponse        `json:"products"`
	Content         ContentResponse          `json:"content"`
}

// TechnicianDashboardData feeds the technician dashboard.
type TechnicianDashboardData struct {
	Assigned []ServiceRequestResponse `json:"assigned"`
}

// CustomerDashboardData feeds the customer dashboard.
type CustomerDashboardData struct {
	Requests []ServiceRequestResponse `json:"requests"`
	Products []ProductResponse        `json:"products"`
}

// ProductDetailData feeds the product page.
type ProductDetailData struct {
	Product *ProductResponse `json:"product"`
}
