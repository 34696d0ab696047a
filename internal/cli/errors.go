package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/wellkeeper/internal/common"
)

// usageError is returned by handlers for malformed arguments.
type usageError string

func (u usageError) Error() string { return "usage: " + string(u) }

// describeError turns a handler error into a line for the user.
func describeError(err error) string {
	var u usageError
	switch {
	case errors.As(err, &u):
		return u.Error()
	case errors.Is(err, common.ErrValidation):
		return fmt.Sprintf("Invalid input: %v", err)
	case errors.Is(err, common.ErrNotFound):
		return "Not found."
	case errors.Is(err, common.ErrStorage):
		return fmt.Sprintf("Storage error, nothing was changed: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
