package calc

import (
	"github.com/pkg/errors"
)

var (
	ErrSyntax    = errors.New("syntax error")
	ErrUndefined = errors.New("undefined set")
)
