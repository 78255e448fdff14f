// Package access decides which view a path resolves to for the current identity.
package access

import (
	"strings"

	"github.com/a1technologies/cooling-crm/internal/domain"
)

// View names a page of the application.
type View string

const (
	ViewLanding             View = "landing"
	ViewLogin               View = "login"
	ViewAdminDashboard      View = "admin_dashboard"
	ViewTechnicianDashboard View = "technician_dashboard"
	ViewCustomerDashboard   View = "customer_dashboard"
	ViewProductDetail       View = "product_detail"
	ViewPrintReport         View = "print_report"
)

// HomePath is where denied or unknown paths are sent.
const HomePath = "/"

// LoginPath is where anonymous callers of a role-gated view are sent.
const LoginPath = "/login"

// Resolution is either a view with its path parameters or a redirect target.
type Resolution struct {
	View     View
	Redirect string
	Params   map[string]string
}

// IsRedirect reports whether the caller should be sent elsewhere.
func (r Resolution) IsRedirect() bool {
	return r.Redirect != ""
}

// DashboardFor maps a role to its dashboard view.
func DashboardFor(role domain.Role) View {
	switch role {
	case domain.RoleAdmin:
		return ViewAdminDashboard
	case domain.RoleTechnician:
		return ViewTechnicianDashboard
	case domain.RoleCustomer:
		return ViewCustomerDashboard
	default:
		return ViewLanding
	}
}

func redirectHome() Resolution {
	return Resolution{Redirect: HomePath}
}

// Resolve maps path to a view for identity, which is nil when nobody is logged in.
// Query strings are ignored.
func Resolve(identity *domain.Identity, path string) Resolution {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	segments := splitPath(path)

	switch {
	case len(segments) == 0:
		if identity == nil {
			return Resolution{View: ViewLanding}
		}
		return Resolution{View: DashboardFor(identity.Role)}

	case len(segments) == 1 && segments[0] == "login":
		if identity != nil {
			return redirectHome()
		}
		return Resolution{View: ViewLogin}

	case len(segments) == 2 && segments[0] == "product":
		return Resolution{View: ViewProductDetail, Params: map[string]string{"id": segments[1]}}

	case len(segments) == 2 && segments[0] == "print-report":
		if identity == nil {
			return Resolution{Redirect: LoginPath}
		}
		if identity.Role != domain.RoleAdmin {
			return redirectHome()
		}
		return Resolution{View: ViewPrintReport, Params: map[string]string{"id": segments[1]}}
	}

	return redirectHome()
}

func splitPath(path string) []string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
