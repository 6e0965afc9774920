package deals

import "errors"

var (
	// ErrInvalidDateIndex is returned when a date index does not select an existing product group.
	ErrInvalidDateIndex = errors.New("date index out of range")
	// ErrUnknownStrategy is returned by the registry for names nobody registered.
	ErrUnknownStrategy = errors.New("unknown strategy")
)
