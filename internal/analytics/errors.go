package analytics

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("entity not found")
	ErrDataIntegrity = errors.New("data integrity violation")
)

// NotFoundError reports a failed lookup that signals an inconsistent snapshot.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(entity string, key any) error {
	return &NotFoundError{Entity: entity, Key: fmt.Sprint(key)}
}
