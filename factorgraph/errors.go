package factorgraph

import "errors"

var (
	// ErrNilRegistry indicates that New was given a nil variable registry.
	ErrNilRegistry = errors.New("factorgraph: registry must not be nil")
	// ErrUnknownVariable indicates a factor domain referencing an unregistered variable.
	ErrUnknownVariable = errors.New("factorgraph: factor domain references an unregistered variable")
	// ErrDuplicateVariable indicates a factor domain listing the same variable twice.
	ErrDuplicateVariable = errors.New("factorgraph: factor domain repeats a variable")
	// ErrPayloadSize indicates a payload whose length differs from the product of the domain sizes.
	ErrPayloadSize = errors.New("factorgraph: payload length must equal the product of the domain sizes")
)
