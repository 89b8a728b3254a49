package util

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestToDomainError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"wrapped not found", fmt.Errorf("lookup: %w", NewNotFound("agent", nil)), CodeNotFound, http.StatusNotFound},
		{"validation", NewValidationError("bad", map[string]any{"field": "name"}), CodeValidation, http.StatusBadRequest},
		{"forbidden", NewForbidden("no"), CodeForbidden, http.StatusForbidden},
		{"conflict", NewConflict("taken", nil), CodeConflict, http.StatusConflict},
		{"deadline", context.DeadlineExceeded, CodeTimeout, http.StatusRequestTimeout},
		{"cancelled", fmt.Errorf("wait: %w", context.Canceled), CodeTimeout, http.StatusRequestTimeout},
		{"plain", errors.New("boom"), CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToDomainError(tc.err)
			if got.Code != tc.code || got.HTTPStatus != tc.status {
				t.Fatalf("expected %s/%d got %s/%d", tc.code, tc.status, got.Code, got.HTTPStatus)
			}
		})
	}
	if ToDomainError(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("agent service: %w", NewNotFound("agent", map[string]any{"id": "agent-404"}))
	if !HasCode(err, CodeNotFound) {
		t.Fatalf("expected NOT_FOUND to be detected through wrapping")
	}
	if HasCode(err, CodeForbidden) {
		t.Fatalf("unexpected FORBIDDEN match")
	}
	if HasCode(errors.New("plain"), CodeNotFound) {
		t.Fatalf("plain errors carry no code")
	}
}

func TestInternalErrorKeepsCause(t *testing.T) {
	cause := errors.New("disk on fire")
	err := NewInternalError(cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap")
	}
	if err.Error() != "internal server error: disk on fire" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
