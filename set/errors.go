package set

import (
	"github.com/pkg/errors"
)

var (
	ErrUnsorted  = errors.New("values are not in strictly ascending order")
	ErrCorrupted = errors.New("sorted set chain is corrupted")
)
