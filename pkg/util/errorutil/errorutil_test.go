package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorKeepsDomainErrors(t *testing.T) {
	wrapped := fmt.Errorf("assign: %w", NewInvalidTransition("solved", "in_process", nil))
	de := ToDomainError(wrapped)
	if de.Code != "INVALID_TRANSITION" || de.HTTPStatus != http.StatusConflict {
		t.Fatalf("unexpected mapping: %+v", de)
	}
	if de.Details["from"] != "solved" {
		t.Fatalf("expected from detail, got %v", de.Details)
	}
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	de := ToDomainError(pgx.ErrNoRows)
	if de.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", de.HTTPStatus)
	}
}

func TestToDomainErrorFallsBackToInternal(t *testing.T) {
	de := ToDomainError(errors.New("boom"))
	if de.Code != "INTERNAL_ERROR" || de.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected mapping: %+v", de)
	}
	if ToDomainError(nil) != nil {
		t.Fatalf("nil must map to nil")
	}
}

func TestHasCode(t *testing.T) {
	if !HasCode(NewValidationError("bad", nil), "VALIDATION_FAILED") {
		t.Fatalf("expected validation code")
	}
	if HasCode(errors.New("plain"), "VALIDATION_FAILED") {
		t.Fatalf("plain error must not match")
	}
}
