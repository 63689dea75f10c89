// Package generr holds the error kinds shared by the generators.
package generr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration indicates a bound, range or count that the generators cannot use.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrConfigurationInfeasible indicates a valid configuration that could not be satisfied
	// within the attempt budget.
	ErrConfigurationInfeasible = errors.New("configuration infeasible")
)

// Invalid wraps ErrInvalidConfiguration with a formatted detail.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}

// Infeasible wraps ErrConfigurationInfeasible with a formatted detail.
func Infeasible(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfigurationInfeasible, fmt.Sprintf(format, args...))
}
