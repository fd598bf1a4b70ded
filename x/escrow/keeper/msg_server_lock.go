package keeper

import (
	"context"
	"encoding/base64"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

// Lock deposits msg.InAmount of msg.FromDenom from the creator into module
// custody, deducts the configured fee and forwards the remainder to the
// admin. The lock record is written before any coins move so that the last
// recorded lock always reflects the intent of the transfer that follows it.
func (k msgServer) Lock(ctx context.Context, msg *types.MsgLock) (*types.MsgLockResponse, error) {
	if err := k.requireNotPaused(ctx); err != nil {
		return nil, err
	}

	var swapped math.Int
	err := k.withReentrancyGuard(ctx, func() error {
		creator, err := k.addressCodec.StringToBytes(msg.Creator)
		if err != nil {
			return errorsmod.Wrap(err, "invalid creator address")
		}

		if err := msg.ValidateBasic(); err != nil {
			return errorsmod.Wrap(err, "invalid lock message")
		}

		admin, err := k.Admin.Get(ctx)
		if err != nil {
			return errorsmod.Wrap(types.ErrMissingValue, "no admin is set")
		}
		adminAddr, err := k.addressCodec.StringToBytes(admin.Address)
		if err != nil {
			return errorsmod.Wrap(err, "invalid stored admin address")
		}

		config, err := k.Config.Get(ctx)
		if err != nil {
			return errorsmod.Wrap(types.ErrMissingValue, "contract not initialized")
		}

		spendable := k.bankKeeper.SpendableCoins(ctx, sdk.AccAddress(creator))
		if spendable.AmountOf(msg.FromDenom).LT(msg.InAmount) {
			return errorsmod.Wrapf(types.ErrInvalidAction,
				"insufficient balance: have %s%s, need %s%s",
				spendable.AmountOf(msg.FromDenom), msg.FromDenom, msg.InAmount, msg.FromDenom)
		}

		// Integer fee math, truncating. A 99% fee on 1 token charges nothing;
		// a 100% fee leaves nothing to forward and the lock fails.
		fee := msg.InAmount.MulRaw(config.FeePercentage).QuoRaw(100)
		swapped = msg.InAmount.Sub(fee)
		if swapped.LT(math.OneInt()) {
			return errorsmod.Wrapf(types.ErrInvalidAction,
				"amount after fee must be at least 1, got %s", swapped)
		}

		record := types.LockRecord{
			User:          msg.Creator,
			DestToken:     msg.DestToken,
			FromDenom:     msg.FromDenom,
			InAmount:      msg.InAmount,
			SwappedAmount: swapped,
			Recipient:     msg.Recipient,
			DestChain:     msg.DestChain,
		}
		if err := k.LastLock.Set(ctx, record); err != nil {
			return errorsmod.Wrap(err, "failed to store lock record")
		}

		deposit := sdk.NewCoins(sdk.NewCoin(msg.FromDenom, msg.InAmount))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sdk.AccAddress(creator), types.ModuleName, deposit); err != nil {
			return errorsmod.Wrap(err, "failed to move deposit into custody")
		}

		forward := sdk.NewCoins(sdk.NewCoin(msg.FromDenom, swapped))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, sdk.AccAddress(adminAddr), forward); err != nil {
			return errorsmod.Wrap(err, "failed to forward swapped amount to admin")
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeLock,
				sdk.NewAttribute(types.AttributeKeyUser, msg.Creator),
				sdk.NewAttribute(types.AttributeKeyFromDenom, msg.FromDenom),
				sdk.NewAttribute(types.AttributeKeyDestToken, msg.DestToken),
				sdk.NewAttribute(types.AttributeKeyInAmount, msg.InAmount.String()),
				sdk.NewAttribute(types.AttributeKeySwappedAmount, swapped.String()),
				sdk.NewAttribute(types.AttributeKeyRecipient, msg.Recipient),
				sdk.NewAttribute(types.AttributeKeyDestChain, base64.StdEncoding.EncodeToString(msg.DestChain)),
			),
		)
		sdkCtx.Logger().Info("🔒 tokens locked",
			"user", msg.Creator,
			"denom", msg.FromDenom,
			"in_amount", msg.InAmount.String(),
			"swapped_amount", swapped.String(),
		)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgLockResponse{SwappedAmount: swapped}, nil
}
