package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name. The module account under this name
	// is the escrow custody address: locked deposits land here and the
	// retained fee accumulates here.
	ModuleName = "escrow"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	// It should be synced with the gov module's name if it is ever changed.
	// See: https://github.com/cosmos/cosmos-sdk/blob/v0.52.0-beta.2/x/gov/types/keys.go#L9
	GovModuleName = "gov"
)

// ParamsKey is the prefix to retrieve all Params
var ParamsKey = collections.NewPrefix("p_escrow")

// InitializedKey marks the contract as bootstrapped; present means
// Initialize has run and can never run again.
var InitializedKey = collections.NewPrefix("initialized")

// OwnerKey stores the immutable root authority.
var OwnerKey = collections.NewPrefix("owner")

// ConfigKey stores the immutable fee configuration.
var ConfigKey = collections.NewPrefix("config")

// AdminKey stores the single operational admin role.
var AdminKey = collections.NewPrefix("admin")

// PausedKey is the emergency halt flag; present means halted.
var PausedKey = collections.NewPrefix("paused")

// ReentrancyGuardKey is held for the duration of one lock or release call.
var ReentrancyGuardKey = collections.NewPrefix("reentrancy_guard")

// LastLockKey stores the snapshot of the most recent lock.
var LastLockKey = collections.NewPrefix("last_lock")
