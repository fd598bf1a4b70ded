package keeper

import (
	"context"

	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	// Set params
	if err := k.Params.Set(ctx, genState.Params); err != nil {
		return err
	}

	// An uninitialized contract carries no further state; Initialize will
	// bootstrap it at runtime.
	if !genState.Initialized {
		return nil
	}

	if err := k.Initialized.Set(ctx, true); err != nil {
		return err
	}
	if err := k.Owner.Set(ctx, genState.Owner); err != nil {
		return err
	}
	if err := k.Config.Set(ctx, genState.Config); err != nil {
		return err
	}

	if genState.Admin != "" {
		if err := k.Admin.Set(ctx, types.AdminRecord{Address: genState.Admin}); err != nil {
			return err
		}
	}
	if genState.Paused {
		if err := k.Paused.Set(ctx, true); err != nil {
			return err
		}
	}
	if genState.LastLock != nil {
		if err := k.LastLock.Set(ctx, *genState.LastLock); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis returns the module's exported genesis. The reentrancy guard
// is transient within a message execution and is never exported.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	var err error

	genesis := types.DefaultGenesis()
	genesis.Params, err = k.Params.Get(ctx)
	if err != nil {
		return nil, err
	}

	genesis.Initialized, err = k.Initialized.Has(ctx)
	if err != nil {
		return nil, err
	}
	if !genesis.Initialized {
		return genesis, nil
	}

	genesis.Owner, err = k.Owner.Get(ctx)
	if err != nil {
		return nil, err
	}
	genesis.Config, err = k.Config.Get(ctx)
	if err != nil {
		return nil, err
	}

	hasAdmin, err := k.Admin.Has(ctx)
	if err != nil {
		return nil, err
	}
	if hasAdmin {
		admin, err := k.Admin.Get(ctx)
		if err != nil {
			return nil, err
		}
		genesis.Admin = admin.Address
	}

	genesis.Paused, err = k.Paused.Has(ctx)
	if err != nil {
		return nil, err
	}

	hasLock, err := k.LastLock.Has(ctx)
	if err != nil {
		return nil, err
	}
	if hasLock {
		lock, err := k.LastLock.Get(ctx)
		if err != nil {
			return nil, err
		}
		genesis.LastLock = &lock
	}

	return genesis, nil
}
