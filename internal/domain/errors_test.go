package domain

import (
	"errors"
	"testing"
)

func TestNetworkError(t *testing.T) {
	baseErr := errors.New("connection refused")

	t.Run("message and unwrap", func(t *testing.T) {
		err := NewNetworkError("dial", baseErr)

		if err.Kind != KindNetwork {
			t.Errorf("Kind = %q, want %q", err.Kind, KindNetwork)
		}
		if err.Error() != "NETWORK: dial: connection refused" {
			t.Errorf("Error() = %q, want %q", err.Error(), "NETWORK: dial: connection refused")
		}
		if !errors.Is(err, baseErr) {
			t.Error("Expected error to wrap baseErr")
		}
	})
}

func TestAPIError(t *testing.T) {
	err := NewAPIError(-1022, "Signature for this request is not valid.")

	if err.Kind != KindAPI {
		t.Errorf("Kind = %q, want %q", err.Kind, KindAPI)
	}
	if err.Code != -1022 {
		t.Errorf("Code = %d, want -1022", err.Code)
	}
	want := "API (code=-1022): Signature for this request is not valid."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("quantity must be positive, got %s", "-1")

	if err.Kind != KindValidation {
		t.Errorf("Kind = %q, want %q", err.Kind, KindValidation)
	}
	if err.Code != 0 {
		t.Errorf("Code = %d, want 0", err.Code)
	}
	if err.Error() != "VALIDATION: quantity must be positive, got -1" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", NewValidationError("bad input"), KindValidation},
		{"api", NewAPIError(-2010, "rejected"), KindAPI},
		{"network", NewNetworkError("dial", errors.New("timeout")), KindNetwork},
		{"plain error", errors.New("plain"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAsOrderError(t *testing.T) {
	t.Run("passes through classified errors", func(t *testing.T) {
		orig := NewAPIError(-1121, "Invalid symbol.")
		got := AsOrderError(orig)
		if got != orig {
			t.Error("expected the same *OrderError back")
		}
	})

	t.Run("wraps plain errors as UNKNOWN", func(t *testing.T) {
		plain := errors.New("surprise")
		got := AsOrderError(plain)
		if got.Kind != KindUnknown {
			t.Errorf("Kind = %q, want %q", got.Kind, KindUnknown)
		}
		if !errors.Is(got, plain) {
			t.Error("expected wrapped error to match errors.Is")
		}
	})
}
