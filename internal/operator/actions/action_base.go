package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/budget-insights/internal/storage"
)

// ErrInvalidAction is returned when an action's input fails validation.
var ErrInvalidAction = errors.New("invalid action")

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
