package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

func TestMsgLockValidateBasic(t *testing.T) {
	creator := accAddr(1)

	valid := func() *types.MsgLock {
		msg, err := types.NewMsgLock(creator, "stake", "wSTAKE", "100", []byte{0x01}, "0xabc")
		require.NoError(t, err)
		return msg
	}

	t.Run("valid message", func(t *testing.T) {
		require.NoError(t, valid().ValidateBasic())
	})

	t.Run("invalid creator", func(t *testing.T) {
		msg := valid()
		msg.Creator = "not_bech32"
		require.Error(t, msg.ValidateBasic())
	})

	t.Run("invalid denom", func(t *testing.T) {
		msg := valid()
		msg.FromDenom = "!!"
		require.Error(t, msg.ValidateBasic())
	})

	t.Run("zero amount", func(t *testing.T) {
		msg := valid()
		msg.InAmount = msg.InAmount.SubRaw(100)
		require.Error(t, msg.ValidateBasic())
	})

	t.Run("rejects malformed amount strings", func(t *testing.T) {
		_, err := types.NewMsgLock(creator, "stake", "wSTAKE", "abc", []byte{0x01}, "0xabc")
		require.Error(t, err)
	})

	t.Run("empty destination token", func(t *testing.T) {
		msg := valid()
		msg.DestToken = ""
		require.Error(t, msg.ValidateBasic())
	})

	t.Run("empty recipient", func(t *testing.T) {
		msg := valid()
		msg.Recipient = ""
		require.Error(t, msg.ValidateBasic())
	})

	t.Run("empty destination chain", func(t *testing.T) {
		msg := valid()
		msg.DestChain = nil
		require.Error(t, msg.ValidateBasic())
	})
}

func TestMsgReleaseValidateBasic(t *testing.T) {
	creator := accAddr(1)
	user := accAddr(2)

	t.Run("valid message", func(t *testing.T) {
		msg, err := types.NewMsgRelease(creator, "97", user, "stake")
		require.NoError(t, err)
		require.NoError(t, msg.ValidateBasic())
	})

	t.Run("invalid user", func(t *testing.T) {
		msg, err := types.NewMsgRelease(creator, "97", "not_bech32", "stake")
		require.NoError(t, err)
		require.Error(t, msg.ValidateBasic())
	})

	t.Run("non-positive amount", func(t *testing.T) {
		msg, err := types.NewMsgRelease(creator, "0", user, "stake")
		require.NoError(t, err)
		require.Error(t, msg.ValidateBasic())
	})
}
