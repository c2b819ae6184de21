package storage

import (
	"errors"
)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Loader loads a stored value into the given struct.
type Loader interface {
	Load(fileName string, value interface{}) error
}
