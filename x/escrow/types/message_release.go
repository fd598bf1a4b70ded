package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

func NewMsgRelease(creator string, amount string, user string, denom string) (*MsgRelease, error) {
	amt, ok := math.NewIntFromString(amount)
	if !ok {
		return nil, errorsmod.Wrapf(ErrInvalidAction, "invalid amount: %s", amount)
	}

	return &MsgRelease{
		Creator: creator,
		Amount:  amt,
		User:    user,
		Denom:   denom,
	}, nil
}

// ValidateBasic performs basic validation of the MsgRelease message
func (msg *MsgRelease) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(ErrInvalidSigner, "invalid creator address: %v", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.User); err != nil {
		return errorsmod.Wrapf(ErrInvalidAction, "invalid user address: %v", err)
	}

	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return errorsmod.Wrapf(ErrInvalidAction, "invalid denom: %v", err)
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return errorsmod.Wrap(ErrInvalidAction, "release amount must be positive")
	}

	return nil
}
