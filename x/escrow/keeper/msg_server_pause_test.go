package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bridgelabs/bridgechain/x/escrow/keeper"
	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

func TestMsgPauseUnpause(t *testing.T) {
	owner := testAddr(1)
	stranger := testAddr(3)

	t.Run("only the owner may pause", func(t *testing.T) {
		f := initFixture(t)
		initializeContract(t, f, owner, 3)
		ms := keeper.NewMsgServerImpl(f.keeper)

		_, err := ms.Pause(f.ctx, types.NewMsgPause(stranger))
		require.ErrorIs(t, err, types.ErrInvalidAction)
	})

	t.Run("pause then unpause round trips", func(t *testing.T) {
		f := initFixture(t)
		initializeContract(t, f, owner, 3)
		ms := keeper.NewMsgServerImpl(f.keeper)

		_, err := ms.Pause(f.ctx, types.NewMsgPause(owner))
		require.NoError(t, err)

		paused, err := f.keeper.Paused.Has(f.ctx)
		require.NoError(t, err)
		require.True(t, paused)

		_, err = ms.Unpause(f.ctx, types.NewMsgUnpause(owner))
		require.NoError(t, err)

		paused, err = f.keeper.Paused.Has(f.ctx)
		require.NoError(t, err)
		require.False(t, paused)
	})

	t.Run("redundant toggles fail", func(t *testing.T) {
		f := initFixture(t)
		initializeContract(t, f, owner, 3)
		ms := keeper.NewMsgServerImpl(f.keeper)

		_, err := ms.Unpause(f.ctx, types.NewMsgUnpause(owner))
		require.ErrorIs(t, err, types.ErrNotFound)

		_, err = ms.Pause(f.ctx, types.NewMsgPause(owner))
		require.NoError(t, err)

		_, err = ms.Pause(f.ctx, types.NewMsgPause(owner))
		require.ErrorIs(t, err, types.ErrAlreadyExists)
	})
}

func TestPauseGatesEntryPoints(t *testing.T) {
	owner := testAddr(1)
	admin := testAddr(2)

	f := initFixture(t)
	initializeContract(t, f, owner, 3)
	ms := keeper.NewMsgServerImpl(f.keeper)

	_, err := ms.AddAdmin(f.ctx, types.NewMsgAddAdmin(owner, admin))
	require.NoError(t, err)

	_, err = ms.Pause(f.ctx, types.NewMsgPause(owner))
	require.NoError(t, err)

	// role mutation is gated
	_, err = ms.RemoveAdmin(f.ctx, types.NewMsgRemoveAdmin(owner))
	require.ErrorIs(t, err, types.ErrInvalidAction)
	require.Contains(t, err.Error(), "contract is paused")

	// fund movement is gated
	lockMsg, err := types.NewMsgLock(testAddr(4), "stake", "wSTAKE", "100", []byte{0x01}, "0xrecipient")
	require.NoError(t, err)
	_, err = ms.Lock(f.ctx, lockMsg)
	require.ErrorIs(t, err, types.ErrInvalidAction)
	require.Contains(t, err.Error(), "contract is paused")

	releaseMsg, err := types.NewMsgRelease(admin, "100", testAddr(4), "stake")
	require.NoError(t, err)
	_, err = ms.Release(f.ctx, releaseMsg)
	require.ErrorIs(t, err, types.ErrInvalidAction)
	require.Contains(t, err.Error(), "contract is paused")

	// unpause is exempt from the gate, everything recovers
	_, err = ms.Unpause(f.ctx, types.NewMsgUnpause(owner))
	require.NoError(t, err)

	_, err = ms.RemoveAdmin(f.ctx, types.NewMsgRemoveAdmin(owner))
	require.NoError(t, err)
}
