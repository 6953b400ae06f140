package providers

import "errors"

var (
	// ErrSchemaChanged indicates the portal response no longer matches the expected shape.
	ErrSchemaChanged = errors.New("listings response schema changed")

	// ErrLoginRejected indicates the portal refused the configured credentials.
	ErrLoginRejected = errors.New("portal login rejected")

	// ErrAlreadyApplied indicates the portal reports a reaction already exists for the listing.
	ErrAlreadyApplied = errors.New("already applied to listing")
)
