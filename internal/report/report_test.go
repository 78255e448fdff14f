package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/a1technologies/cooling-crm/internal/domain"
)

func solvedRequest() domain.ServiceRequest {
	tech := "Ramesh Kumar"
	notes := "Replaced seal"
	return domain.ServiceRequest{
		ID:                     "sr003",
		CustomerName:           "Sam Wilson",
		ProductName:            "Water Pump 3000",
		IssueDescription:       "Leaking from the base.",
		Address:                "789 Pine Ln, Nashik",
		Status:                 domain.ServiceStatusSolved,
		AssignedTechnicianName: &tech,
		TechnicianNotes:        &notes,
		Feedback:               &domain.Feedback{Rating: 5, Remarks: "Excellent and fast service!"},
		CreatedAt:              time.Date(2023, 10, 22, 9, 0, 0, 0, time.UTC),
	}
}

func TestFromRequestPlaceholders(t *testing.T) {
	r := FromRequest(domain.ServiceRequest{ID: "sr001", Status: domain.ServiceStatusUnsolved, CreatedAt: time.Date(2023, 10, 26, 10, 0, 0, 0, time.UTC)})
	if r.TechnicianName != "N/A" || r.Rating != "Not provided" || r.TechnicianNotes != "..." || r.Remarks != "..." {
		t.Fatalf("unexpected placeholders: %+v", r)
	}
	if r.Date != "26/10/2023" || r.Status != "Unsolved" {
		t.Fatalf("unexpected date/status: %+v", r)
	}
}

func TestFromRequestSolved(t *testing.T) {
	r := FromRequest(solvedRequest())
	if r.TechnicianName != "Ramesh Kumar" || r.Rating != "5 / 5" || r.Remarks != "Excellent and fast service!" {
		t.Fatalf("unexpected report: %+v", r)
	}
}

func TestRenderHTML(t *testing.T) {
	out, err := RenderHTML(FromRequest(solvedRequest()), true)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	for _, want := range []string{"window.print()", "SERVICE REPORT / LR FORMAT", "sr003", "Sam Wilson", "5 / 5"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output", want)
		}
	}

	plain, _ := RenderHTML(FromRequest(solvedRequest()), false)
	if strings.Contains(string(plain), "window.print()") {
		t.Fatalf("auto print must be optional")
	}
}

func TestRenderHTMLEscapes(t *testing.T) {
	req := solvedRequest()
	req.CustomerName = "<script>alert(1)</script>"
	out, _ := RenderHTML(FromRequest(req), false)
	if strings.Contains(string(out), "<script>alert(1)") {
		t.Fatalf("customer name was not escaped")
	}
}

func TestRenderPDF(t *testing.T) {
	out, err := RenderPDF(FromRequest(solvedRequest()))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestRenderPDFWithPlaceholders(t *testing.T) {
	req := solvedRequest()
	req.Status = domain.ServiceStatusUnsolved
	req.AssignedTechnicianID, req.AssignedTechnicianName, req.TechnicianNotes, req.Feedback = nil, nil, nil, nil
	out, err := RenderPDF(FromRequest(req))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}
