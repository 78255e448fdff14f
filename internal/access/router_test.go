package access

import (
	"testing"

	"github.com/a1technologies/cooling-crm/internal/domain"
)

func identity(role domain.Role) *domain.Identity {
	return &domain.Identity{ID: "x", Role: role}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name     string
		identity *domain.Identity
		path     string
		view     View
		redirect string
		param    string
	}{
		{"landing", nil, "/", ViewLanding, "", ""},
		{"admin home", identity(domain.RoleAdmin), "/", ViewAdminDashboard, "", ""},
		{"technician home", identity(domain.RoleTechnician), "/", ViewTechnicianDashboard, "", ""},
		{"customer home", identity(domain.RoleCustomer), "/", ViewCustomerDashboard, "", ""},
		{"login anonymous", nil, "/login", ViewLogin, "", ""},
		{"login while authenticated", identity(domain.RoleCustomer), "/login", "", "/", ""},
		{"product anonymous", nil, "/product/p001", ViewProductDetail, "", "p001"},
		{"product authenticated", identity(domain.RoleTechnician), "/product/p002/", ViewProductDetail, "", "p002"},
		{"report admin", identity(domain.RoleAdmin), "/print-report/sr001?format=pdf", ViewPrintReport, "", "sr001"},
		{"report technician", identity(domain.RoleTechnician), "/print-report/sr001", "", "/", ""},
		{"report anonymous", nil, "/print-report/sr001", "", "/login", ""},
		{"unknown path", nil, "/does/not/exist", "", "/", ""},
		{"product without id", nil, "/product", "", "/", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.identity, tc.path)
			if got.View != tc.view || got.Redirect != tc.redirect {
				t.Fatalf("got %+v, want view=%q redirect=%q", got, tc.view, tc.redirect)
			}
			if tc.param != "" && got.Params["id"] != tc.param {
				t.Fatalf("param id: got %q want %q", got.Params["id"], tc.param)
			}
		})
	}
}

func TestDashboardForUnknownRole(t *testing.T) {
	if DashboardFor(domain.Role("owner")) != ViewLanding {
		t.Fatalf("unknown role must fall back to landing")
	}
}
