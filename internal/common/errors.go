package common

import (
	"errors"
)

var (
	ErrUnsupportedTarget  = errors.New("unsupported translation target")
	ErrNotADataclassModel = errors.New("model is not an exportable struct")
	ErrMessageIDEmpty     = errors.New("message id is empty")
	ErrConfigInvalid      = errors.New("config validation failed")
	ErrUnableToPersist    = errors.New("unable to persist message record")
)
