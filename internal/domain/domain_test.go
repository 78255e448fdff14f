package domain

import "testing"

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleTechnician, RoleCustomer} {
		if !role.Valid() {
			t.Fatalf("expected %q to be valid", role)
		}
	}
	if Role("owner").Valid() {
		t.Fatalf("unexpected valid role")
	}
}

func TestServiceStatusLabel(t *testing.T) {
	cases := map[ServiceStatus]string{
		ServiceStatusUnsolved:  "Unsolved",
		ServiceStatusInProcess: "In Process",
		ServiceStatusSolved:    "Solved",
	}
	for status, want := range cases {
		if got := status.Label(); got != want {
			t.Fatalf("label for %q: got %q want %q", status, got, want)
		}
	}
}

func TestServiceRequestCloneIsDeep(t *testing.T) {
	techID := "tech1"
	req := ServiceRequest{ID: "sr1", AssignedTechnicianID: &techID, Feedback: &Feedback{Rating: 4}}
	clone := req.Clone()
	*clone.AssignedTechnicianID = "tech2"
	clone.Feedback.Rating = 1
	if *req.AssignedTechnicianID != "tech1" || req.Feedback.Rating != 4 {
		t.Fatalf("clone shares pointers with original")
	}
}
