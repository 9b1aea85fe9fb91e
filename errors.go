package orb

import "errors"

// Sentinel errors returned (or wrapped) by the orb package.
var (
	// ErrUnknownSize is returned by ParseSize for names outside the size
	// enumeration. Resolvers panic with it when handed an out-of-range Size,
	// which can only happen through an explicit conversion.
	ErrUnknownSize = errors.New("orb: unknown size")

	// ErrUnknownStrategy is returned by ParseStrategy for unregistered names.
	ErrUnknownStrategy = errors.New("orb: unknown strategy")
)
