package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-insights/internal/analysis"
	"github.com/carson-networks/budget-insights/internal/operator/actions"
)

// FromError maps a service error to a Huma status error. Invalid input becomes
// a 400, an unsupported KPI a 422 and anything else a 500 carrying message.
func FromError(message string, err error) error {
	switch {
	case errors.Is(err, analysis.ErrInvalidArgument), errors.Is(err, actions.ErrInvalidAction):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, analysis.ErrUnsupportedKpi):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}
