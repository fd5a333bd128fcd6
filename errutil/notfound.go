package errutil

import (
	"errors"
	"fmt"
)

func ErrIsNotFound(err error) bool {
	return errors.As(err, &NotFound{})
}

// NotFound is returned when a route, table or file does not exist. Kind is
// optional, e.g. "endpoint".
type NotFound struct {
	Kind string `json:"kind,omitempty"`
	Name string `json:"name"`
}

func (e NotFound) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("'%s' not found", e.Name)
	}
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.Name)
}
