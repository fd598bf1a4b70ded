package types

// DONTCOVER

import (
	"cosmossdk.io/errors"
)

// x/escrow module sentinel errors
var (
	ErrInvalidSigner      = errors.Register(ModuleName, 1100, "expected gov account as only signer for proposal message")
	ErrAlreadyInitialized = errors.Register(ModuleName, 1101, "contract already initialized")
	ErrAlreadyExists      = errors.Register(ModuleName, 1102, "value already set")
	ErrNotFound           = errors.Register(ModuleName, 1103, "value not set")
	ErrInvalidAction      = errors.Register(ModuleName, 1104, "invalid action")
	ErrMissingValue       = errors.Register(ModuleName, 1105, "required value missing")
)
