package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

// Initialize is the one-shot bootstrap. Whoever submits the first
// MsgInitialize fixes the owner and the fee configuration for the lifetime
// of the contract; no role check is performed on the creator. A second call
// always fails, regardless of arguments.
func (k msgServer) Initialize(ctx context.Context, msg *types.MsgInitialize) (*types.MsgInitializeResponse, error) {
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrap(err, "invalid initialize message")
	}

	initialized, err := k.Initialized.Has(ctx)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to check initialization marker")
	}
	if initialized {
		return nil, types.ErrAlreadyInitialized
	}

	if err := k.Owner.Set(ctx, msg.Owner); err != nil {
		return nil, errorsmod.Wrap(err, "failed to set owner")
	}
	if err := k.Config.Set(ctx, types.Config{FeePercentage: msg.FeePercentage}); err != nil {
		return nil, errorsmod.Wrap(err, "failed to set config")
	}
	if err := k.Initialized.Set(ctx, true); err != nil {
		return nil, errorsmod.Wrap(err, "failed to set initialization marker")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.Logger().Info("escrow contract initialized",
		"owner", msg.Owner,
		"fee_percentage", msg.FeePercentage,
	)

	return &types.MsgInitializeResponse{}, nil
}
