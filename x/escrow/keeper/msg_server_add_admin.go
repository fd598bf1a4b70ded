package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

func (k msgServer) AddAdmin(ctx context.Context, msg *types.MsgAddAdmin) (*types.MsgAddAdminResponse, error) {
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrap(err, "invalid add admin message")
	}

	if err := k.requireNotPaused(ctx); err != nil {
		return nil, err
	}
	if err := k.requireOwner(ctx, msg.Creator); err != nil {
		return nil, err
	}

	// Exactly one admin at a time: rotation goes through RemoveAdmin first.
	exists, err := k.Admin.Has(ctx)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to check admin")
	}
	if exists {
		return nil, errorsmod.Wrap(types.ErrAlreadyExists, "an admin is already set")
	}

	if err := k.Admin.Set(ctx, types.AdminRecord{Address: msg.Admin}); err != nil {
		return nil, errorsmod.Wrap(err, "failed to set admin")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAdminAdded,
			sdk.NewAttribute(types.AttributeKeyAdmin, msg.Admin),
		),
	)

	return &types.MsgAddAdminResponse{}, nil
}
