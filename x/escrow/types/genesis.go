package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultGenesis returns the default genesis state: an uninitialized
// contract. The first MsgInitialize then fixes owner and fee.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if !gs.Initialized {
		if gs.Owner != "" || gs.Admin != "" || gs.Paused || gs.LastLock != nil {
			return fmt.Errorf("contract state present but initialized is false")
		}
		return nil
	}

	if _, err := sdk.AccAddressFromBech32(gs.Owner); err != nil {
		return fmt.Errorf("invalid owner address: %w", err)
	}
	if gs.Config.FeePercentage < 0 || gs.Config.FeePercentage > 100 {
		return fmt.Errorf("fee percentage must be between 0 and 100, got %d", gs.Config.FeePercentage)
	}
	if gs.Admin != "" {
		if _, err := sdk.AccAddressFromBech32(gs.Admin); err != nil {
			return fmt.Errorf("invalid admin address: %w", err)
		}
	}

	return nil
}
