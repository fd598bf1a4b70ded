package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

func (k msgServer) RemoveAdmin(ctx context.Context, msg *types.MsgRemoveAdmin) (*types.MsgRemoveAdminResponse, error) {
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	if err := k.requireNotPaused(ctx); err != nil {
		return nil, err
	}
	if err := k.requireOwner(ctx, msg.Creator); err != nil {
		return nil, err
	}

	exists, err := k.Admin.Has(ctx)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to check admin")
	}
	if !exists {
		return nil, errorsmod.Wrap(types.ErrNotFound, "no admin is set")
	}

	if err := k.Admin.Remove(ctx); err != nil {
		return nil, errorsmod.Wrap(err, "failed to remove admin")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeAdminRemoved),
	)

	return &types.MsgRemoveAdminResponse{}, nil
}
