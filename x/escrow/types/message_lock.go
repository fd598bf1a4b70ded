package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

func NewMsgLock(creator string, fromDenom string, destToken string, inAmount string, destChain []byte, recipient string) (*MsgLock, error) {
	amount, ok := math.NewIntFromString(inAmount)
	if !ok {
		return nil, errorsmod.Wrapf(ErrInvalidAction, "invalid amount: %s", inAmount)
	}

	return &MsgLock{
		Creator:   creator,
		FromDenom: fromDenom,
		DestToken: destToken,
		InAmount:  amount,
		DestChain: destChain,
		Recipient: recipient,
	}, nil
}

// ValidateBasic performs basic validation of the MsgLock message. The
// depositor's balance and the post-fee amount are checked at execution time.
func (msg *MsgLock) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(ErrInvalidSigner, "invalid creator address: %v", err)
	}

	if err := sdk.ValidateDenom(msg.FromDenom); err != nil {
		return errorsmod.Wrapf(ErrInvalidAction, "invalid source denom: %v", err)
	}

	if msg.InAmount.IsNil() || !msg.InAmount.IsPositive() {
		return errorsmod.Wrap(ErrInvalidAction, "lock amount must be at least 1")
	}

	if len(msg.DestToken) == 0 {
		return errorsmod.Wrap(ErrInvalidAction, "destination token cannot be empty")
	}

	if len(msg.Recipient) == 0 {
		return errorsmod.Wrap(ErrInvalidAction, "recipient cannot be empty")
	}

	if len(msg.DestChain) == 0 {
		return errorsmod.Wrap(ErrInvalidAction, "destination chain cannot be empty")
	}

	return nil
}
