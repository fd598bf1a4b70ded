package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

// Pause halts locks, releases and admin rotation until Unpause. Pausing is
// itself exempt from the pause gate so the owner can always stop the
// contract.
func (k msgServer) Pause(ctx context.Context, msg *types.MsgPause) (*types.MsgPauseResponse, error) {
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	if err := k.requireOwner(ctx, msg.Creator); err != nil {
		return nil, err
	}

	paused, err := k.Paused.Has(ctx)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to check pause flag")
	}
	if paused {
		return nil, errorsmod.Wrap(types.ErrAlreadyExists, "contract is already paused")
	}

	if err := k.Paused.Set(ctx, true); err != nil {
		return nil, errorsmod.Wrap(err, "failed to set pause flag")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeContractPaused),
	)

	return &types.MsgPauseResponse{}, nil
}
