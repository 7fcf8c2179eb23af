package register

import "errors"

var (
	// ErrBadDomainSize indicates a registration with a domain size smaller than one.
	ErrBadDomainSize = errors.New("register: domain size must be a positive integer")
	// ErrDomainConflict indicates a re-registration with a different domain size.
	ErrDomainConflict = errors.New("register: variable already registered with a different domain size")
	// ErrUnknownVariable indicates a lookup for a variable that was never registered.
	ErrUnknownVariable = errors.New("register: variable is not registered")
)
