package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

func NewMsgInitialize(creator string, owner string, feePercentage int64) *MsgInitialize {
	return &MsgInitialize{
		Creator:       creator,
		Owner:         owner,
		FeePercentage: feePercentage,
	}
}

// ValidateBasic performs basic validation of the MsgInitialize message
func (msg *MsgInitialize) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(ErrInvalidSigner, "invalid creator address: %v", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return errorsmod.Wrapf(ErrInvalidAction, "invalid owner address: %v", err)
	}

	if msg.FeePercentage < 0 || msg.FeePercentage > 100 {
		return errorsmod.Wrapf(ErrInvalidAction, "fee percentage must be between 0 and 100, got %d", msg.FeePercentage)
	}

	return nil
}
