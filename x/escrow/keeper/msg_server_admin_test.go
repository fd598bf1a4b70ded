package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bridgelabs/bridgechain/x/escrow/keeper"
	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

func TestMsgAddAdmin(t *testing.T) {
	owner := testAddr(1)
	admin := testAddr(2)
	stranger := testAddr(3)

	t.Run("fails before initialization", func(t *testing.T) {
		f := initFixture(t)
		ms := keeper.NewMsgServerImpl(f.keeper)

		_, err := ms.AddAdmin(f.ctx, types.NewMsgAddAdmin(owner, admin))
		require.ErrorIs(t, err, types.ErrMissingValue)
		require.Contains(t, err.Error(), "contract not initialized")
	})

	t.Run("only the owner may add", func(t *testing.T) {
		f := initFixture(t)
		initializeContract(t, f, owner, 3)
		ms := keeper.NewMsgServerImpl(f.keeper)

		_, err := ms.AddAdmin(f.ctx, types.NewMsgAddAdmin(stranger, admin))
		require.ErrorIs(t, err, types.ErrInvalidAction)
		require.Contains(t, err.Error(), "caller is not the owner")
	})

	t.Run("adds and records the admin", func(t *testing.T) {
		f := initFixture(t)
		initializeContract(t, f, owner, 3)
		ms := keeper.NewMsgServerImpl(f.keeper)

		_, err := ms.AddAdmin(f.ctx, types.NewMsgAddAdmin(owner, admin))
		require.NoError(t, err)

		stored, err := f.keeper.Admin.Get(f.ctx)
		require.NoError(t, err)
		require.Equal(t, admin, stored.Address)
	})

	t.Run("rejects a second admin", func(t *testing.T) {
		f := initFixture(t)
		initializeContract(t, f, owner, 3)
		ms := keeper.NewMsgServerImpl(f.keeper)

		_, err := ms.AddAdmin(f.ctx, types.NewMsgAddAdmin(owner, admin))
		require.NoError(t, err)

		_, err = ms.AddAdmin(f.ctx, types.NewMsgAddAdmin(owner, stranger))
		require.ErrorIs(t, err, types.ErrAlreadyExists)

		// the original admin is untouched
		stored, err := f.keeper.Admin.Get(f.ctx)
		require.NoError(t, err)
		require.Equal(t, admin, stored.Address)
	})
}

func TestMsgRemoveAdmin(t *testing.T) {
	owner := testAddr(1)
	admin := testAddr(2)
	stranger := testAddr(3)

	t.Run("fails when no admin is set", func(t *testing.T) {
		f := initFixture(t)
		initializeContract(t, f, owner, 3)
		ms := keeper.NewMsgServerImpl(f.keeper)

		_, err := ms.RemoveAdmin(f.ctx, types.NewMsgRemoveAdmin(owner))
		require.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("only the owner may remove", func(t *testing.T) {
		f := initFixture(t)
		initializeContract(t, f, owner, 3)
		ms := keeper.NewMsgServerImpl(f.keeper)

		_, err := ms.AddAdmin(f.ctx, types.NewMsgAddAdmin(owner, admin))
		require.NoError(t, err)

		_, err = ms.RemoveAdmin(f.ctx, types.NewMsgRemoveAdmin(stranger))
		require.ErrorIs(t, err, types.ErrInvalidAction)
	})

	t.Run("removes the admin and allows rotation", func(t *testing.T) {
		f := initFixture(t)
		initializeContract(t, f, owner, 3)
		ms := keeper.NewMsgServerImpl(f.keeper)

		_, err := ms.AddAdmin(f.ctx, types.NewMsgAddAdmin(owner, admin))
		require.NoError(t, err)

		_, err = ms.RemoveAdmin(f.ctx, types.NewMsgRemoveAdmin(owner))
		require.NoError(t, err)

		exists, err := f.keeper.Admin.Has(f.ctx)
		require.NoError(t, err)
		require.False(t, exists)

		// rotation: a new admin can now be added
		_, err = ms.AddAdmin(f.ctx, types.NewMsgAddAdmin(owner, stranger))
		require.NoError(t, err)
	})
}
