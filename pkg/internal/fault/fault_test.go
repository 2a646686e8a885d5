package fault

import (
	"errors"
	"fmt"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("gone"), 404},
		{"unauthorized", Unauthorized("nope"), 403},
		{"closed", Closed("done"), 400},
		{"duplicate", Duplicate("again"), 409},
		{"invalid", Invalid("bad"), 400},
		{"internal", Internal("boom", errors.New("db")), 500},
		{"plain error", errors.New("anything"), 500},
		{"wrapped fault", fmt.Errorf("context: %w", Duplicate("again")), 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	err := Wrap(KindClosed, "survey is closed", errors.New("state"))
	if !IsKind(err, KindClosed) {
		t.Errorf("expected kind to match")
	}
	if IsKind(err, KindNotFound) {
		t.Errorf("kinds must not cross match")
	}
	if IsKind(errors.New("plain"), KindClosed) {
		t.Errorf("plain errors carry no kind")
	}
	if IsKind(nil, KindClosed) {
		t.Errorf("nil carries no kind")
	}
}

func TestErrorMessage(t *testing.T) {
	if got := NotFound("survey not found").Error(); got != "survey not found" {
		t.Errorf("unexpected message: %q", got)
	}
	wrapped := Internal("unable to save", errors.New("disk full"))
	if got := wrapped.Error(); got != "unable to save: disk full" {
		t.Errorf("unexpected message: %q", got)
	}
	if !errors.Is(wrapped, errors.Unwrap(wrapped)) {
		t.Errorf("expected wrapped cause to unwrap")
	}
}
