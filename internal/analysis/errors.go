package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for absent or structurally invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedKpi is returned when no strategy can serve a KPI request.
	ErrUnsupportedKpi = errors.New("unsupported kpi")
	// ErrConfiguration is returned when a registry is built with conflicting strategies.
	ErrConfiguration = errors.New("analysis configuration")
)

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
