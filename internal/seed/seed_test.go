package seed

import (
	"testing"

	"github.com/a1technologies/cooling-crm/internal/domain"
)

func TestDefaultSeed(t *testing.T) {
	data, err := Default()
	if err != nil {
		t.Fatalf("default seed: %v", err)
	}
	if len(data.Identities) != 3 {
		t.Fatalf("expected 3 identities, got %d", len(data.Identities))
	}
	if data.Identities[1].Email != "tech@a1.com" || data.Identities[1].Role != domain.RoleTechnician {
		t.Fatalf("unexpected technician identity: %+v", data.Identities[1])
	}
	if len(data.Products) != 3 || data.Products[0].ID != "p001" {
		t.Fatalf("unexpected products: %+v", data.Products)
	}
	if got := data.Products[0].Specifications; len(got) != 3 || got[0] != "5000 CFM Airflow" {
		t.Fatalf("unexpected specs: %v", got)
	}
	if len(data.ServiceRequests) != 4 {
		t.Fatalf("expected 4 service requests, got %d", len(data.ServiceRequests))
	}
	solved := data.ServiceRequests[2]
	if solved.Status != domain.ServiceStatusSolved || solved.Feedback == nil || solved.Feedback.Rating != 5 {
		t.Fatalf("unexpected solved request: %+v", solved)
	}
	if len(data.Content.Stats) != 4 || len(data.Content.Features) != 3 || len(data.Content.Testimonials) != 3 {
		t.Fatalf("unexpected content lists")
	}
	if len(data.Technicians) != 2 {
		t.Fatalf("expected 2 technicians, got %d", len(data.Technicians))
	}
}

func TestParseRejectsBadRole(t *testing.T) {
	raw := []byte("identities:\n  - {id: x, email: x@a1.com, name: X, role: owner}\n")
	if _, err := Parse(raw); err == nil {
		t.Fatalf("expected role error")
	}
}

func TestParseRejectsHalfAssignedRequest(t *testing.T) {
	raw := []byte(`service_requests:
  - id: sr9
    status: in_process
    assigned_technician_id: tech1
    created_at: 2023-10-26T10:00:00Z
`)
	if _, err := Parse(raw); err == nil {
		t.Fatalf("expected technician pairing error")
	}
}

func TestParseRejectsDuplicateTestimonial(t *testing.T) {
	raw := []byte(`content:
  testimonials:
    - {id: t1, customer_name: A, text: a}
    - {id: t1, customer_name: B, text: b}
`)
	if _, err := Parse(raw); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}
