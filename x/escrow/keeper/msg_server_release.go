package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

// Release pays out msg.Amount of msg.Denom from the admin to msg.User. Only
// the current admin may call it; the payout comes from the admin's own
// balance, not from module custody.
func (k msgServer) Release(ctx context.Context, msg *types.MsgRelease) (*types.MsgReleaseResponse, error) {
	if err := k.requireNotPaused(ctx); err != nil {
		return nil, err
	}

	err := k.withReentrancyGuard(ctx, func() error {
		creator, err := k.addressCodec.StringToBytes(msg.Creator)
		if err != nil {
			return errorsmod.Wrap(err, "invalid creator address")
		}

		if err := msg.ValidateBasic(); err != nil {
			return errorsmod.Wrap(err, "invalid release message")
		}

		admin, err := k.Admin.Get(ctx)
		if err != nil {
			return errorsmod.Wrap(types.ErrMissingValue, "no admin is set")
		}
		if msg.Creator != admin.Address {
			return errorsmod.Wrap(types.ErrInvalidAction, "caller is not the admin")
		}

		user, err := k.addressCodec.StringToBytes(msg.User)
		if err != nil {
			return errorsmod.Wrap(err, "invalid user address")
		}

		spendable := k.bankKeeper.SpendableCoins(ctx, sdk.AccAddress(creator))
		if spendable.AmountOf(msg.Denom).LT(msg.Amount) {
			return errorsmod.Wrapf(types.ErrInvalidAction,
				"insufficient admin balance: have %s%s, need %s%s",
				spendable.AmountOf(msg.Denom), msg.Denom, msg.Amount, msg.Denom)
		}

		payout := sdk.NewCoins(sdk.NewCoin(msg.Denom, msg.Amount))
		if err := k.bankKeeper.SendCoins(ctx, sdk.AccAddress(creator), sdk.AccAddress(user), payout); err != nil {
			return errorsmod.Wrap(err, "failed to pay out to user")
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRelease,
				sdk.NewAttribute(types.AttributeKeyAdmin, msg.Creator),
				sdk.NewAttribute(types.AttributeKeyUser, msg.User),
				sdk.NewAttribute(types.AttributeKeyDenom, msg.Denom),
				sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
			),
		)
		sdkCtx.Logger().Info("🔓 tokens released",
			"admin", msg.Creator,
			"user", msg.User,
			"denom", msg.Denom,
			"amount", msg.Amount.String(),
		)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgReleaseResponse{}, nil
}
