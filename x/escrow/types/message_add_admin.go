package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

func NewMsgAddAdmin(creator string, admin string) *MsgAddAdmin {
	return &MsgAddAdmin{
		Creator: creator,
		Admin:   admin,
	}
}

// ValidateBasic performs basic validation of the MsgAddAdmin message
func (msg *MsgAddAdmin) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(ErrInvalidSigner, "invalid creator address: %v", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errorsmod.Wrapf(ErrInvalidAction, "invalid admin address: %v", err)
	}

	return nil
}
