package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	"github.com/cosmos/cosmos-sdk/codec"

	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

type Keeper struct {
	storeService corestore.KVStoreService
	cdc          codec.Codec
	addressCodec address.Codec
	// Address capable of executing a MsgUpdateParams message.
	// Typically, this should be the x/gov module account.
	authority []byte

	Schema collections.Schema
	Params collections.Item[types.Params]
	// Initialized marks the contract as bootstrapped; once present,
	// Initialize can never run again.
	Initialized collections.Item[bool]
	// Owner is the immutable root authority, recorded at initialization.
	Owner collections.Item[string]
	// Config is the immutable fee configuration, recorded at initialization.
	Config collections.Item[types.Config]
	// Admin is the single operational role that custodies forwarded deposits
	// and authorizes releases. At most one admin exists at a time.
	Admin collections.Item[types.AdminRecord]
	// Paused is the emergency halt flag; presence means halted.
	Paused collections.Item[bool]
	// ReentrancyGuard is held for the duration of a single lock or release
	// call; a nested call into either while it is set must fail.
	ReentrancyGuard collections.Item[bool]
	// LastLock is the snapshot of the most recent lock only, overwritten by
	// each successful lock.
	LastLock collections.Item[types.LockRecord]

	bankKeeper types.BankKeeper
}

func NewKeeper(
	storeService corestore.KVStoreService,
	cdc codec.Codec,
	addressCodec address.Codec,
	authority []byte,

	bankKeeper types.BankKeeper,
) *Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %s: %s", authority, err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := &Keeper{
		storeService: storeService,
		cdc:          cdc,
		addressCodec: addressCodec,
		authority:    authority,

		bankKeeper: bankKeeper,

		Params:          collections.NewItem(sb, types.ParamsKey, "params", codec.CollValue[types.Params](cdc)),
		Initialized:     collections.NewItem(sb, types.InitializedKey, "initialized", collections.BoolValue),
		Owner:           collections.NewItem(sb, types.OwnerKey, "owner", collections.StringValue),
		Config:          collections.NewItem(sb, types.ConfigKey, "config", codec.CollValue[types.Config](cdc)),
		Admin:           collections.NewItem(sb, types.AdminKey, "admin", codec.CollValue[types.AdminRecord](cdc)),
		Paused:          collections.NewItem(sb, types.PausedKey, "paused", collections.BoolValue),
		ReentrancyGuard: collections.NewItem(sb, types.ReentrancyGuardKey, "reentrancy_guard", collections.BoolValue),
		LastLock:        collections.NewItem(sb, types.LastLockKey, "last_lock", codec.CollValue[types.LockRecord](cdc)),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() []byte {
	return k.authority
}
