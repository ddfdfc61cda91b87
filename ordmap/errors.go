package ordmap

import (
	"errors"
	"fmt"
)

var ErrKeyConflict = errors.New("key already present")

// KeyConflictError is returned by PutNew when the key already exists. It
// names the offending key and carries a rendering of the map's contents at
// the time of the conflict. errors.Is(err, ErrKeyConflict) matches it.
type KeyConflictError[K comparable] struct {
	Key      K
	Contents string
}

func (e *KeyConflictError[K]) Error() string {
	return fmt.Sprintf("key %v already present in %s", e.Key, e.Contents)
}

func (e *KeyConflictError[K]) Unwrap() error {
	return ErrKeyConflict
}
