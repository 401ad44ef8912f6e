package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrEntityNotFound = errors.New("entity does not exist")
	ErrTypeMismatch   = errors.New("component value does not match store type")
)

// ComponentNotRegisteredError is returned when a query or a component operation
// references a component type the World does not know.
type ComponentNotRegisteredError struct {
	Type reflect.Type
}

func (e *ComponentNotRegisteredError) Error() string {
	return fmt.Sprintf("component type %s not registered", e.Type)
}
