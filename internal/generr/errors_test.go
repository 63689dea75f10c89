package generr

import (
	"errors"
	"testing"
)

func TestWrappers(t *testing.T) {
	err := Invalid("center %v outside [0,1]", 1.5)
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
	if errors.Is(err, ErrConfigurationInfeasible) {
		t.Fatalf("unexpected ErrConfigurationInfeasible match")
	}
	if got, want := err.Error(), "invalid configuration: center 1.5 outside [0,1]"; got != want {
		t.Fatalf("message=%q want %q", got, want)
	}

	err = Infeasible("placed %d of %d", 3, 10)
	if !errors.Is(err, ErrConfigurationInfeasible) {
		t.Fatalf("expected ErrConfigurationInfeasible, got %v", err)
	}
}
