package qtable

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is matched by every error Insert returns for a key
	// outside [MinKey, MaxKey].
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidCapacity is returned by New for a capacity below 1.
	ErrInvalidCapacity = errors.New("invalid capacity")
)

// InvalidKeyError reports a rejected key. The table is left unchanged.
type InvalidKeyError struct {
	Key int
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("Invalid key: %d", e.Key)
}

func (e *InvalidKeyError) Unwrap() error {
	return ErrInvalidKey
}
