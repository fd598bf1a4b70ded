package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

func (k msgServer) Unpause(ctx context.Context, msg *types.MsgUnpause) (*types.MsgUnpauseResponse, error) {
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
	if !paused {
		return nil, errorsmod.Wrap(types.ErrNotFound, "contract is not paused")
	}

	if err := k.Paused.Remove(ctx); err != nil {
		return nil, errorsmod.Wrap(err, "failed to clear pause flag")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeContractUnpaused),
	)

	return &types.MsgUnpauseResponse{}, nil
}
