package errors

import "fmt"

var (
	ErrUnknownDemo         = fmt.Errorf("unknown demo")
	ErrNilHandler          = fmt.Errorf("nil handler in chain")
	ErrInvalidRegistration = fmt.Errorf("invalid registration request")
)
