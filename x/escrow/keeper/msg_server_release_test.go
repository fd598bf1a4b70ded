package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/bridgelabs/bridgechain/x/escrow/keeper"
	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

func mustReleaseMsg(t *testing.T, creator, amount, user, denom string) *types.MsgRelease {
	t.Helper()
	msg, err := types.NewMsgRelease(creator, amount, user, denom)
	require.NoError(t, err)
	return msg
}

func TestMsgRelease(t *testing.T) {
	owner := testAddr(1)
	admin := testAddr(2)
	user := testAddr(3)
	stranger := testAddr(4)
	userAcc := sdk.MustAccAddressFromBech32(user)
	adminAcc := sdk.MustAccAddressFromBech32(admin)

	setup := func(t *testing.T) (*fixture, types.MsgServer) {
		f := initFixture(t)
		initializeContract(t, f, owner, 3)
		ms := keeper.NewMsgServerImpl(f.keeper)
		_, err := ms.AddAdmin(f.ctx, types.NewMsgAddAdmin(owner, admin))
		require.NoError(t, err)
		return f, ms
	}

	t.Run("pays out from the admin to the user", func(t *testing.T) {
		f, ms := setup(t)
		f.bankKeeper.setBalance(adminAcc, sdk.NewCoins(sdk.NewInt64Coin("stake", 500)))

		_, err := ms.Release(f.ctx, mustReleaseMsg(t, admin, "97", user, "stake"))
		require.NoError(t, err)

		require.Equal(t, math.NewInt(403), f.bankKeeper.SpendableCoins(f.ctx, adminAcc).AmountOf("stake"))
		require.Equal(t, math.NewInt(97), f.bankKeeper.SpendableCoins(f.ctx, userAcc).AmountOf("stake"))

		var found bool
		for _, ev := range f.ctx.EventManager().Events() {
			if ev.Type == types.EventTypeRelease {
				found = true
			}
		}
		require.True(t, found)
	})

	t.Run("only the admin may release", func(t *testing.T) {
		f, ms := setup(t)
		f.bankKeeper.setBalance(adminAcc, sdk.NewCoins(sdk.NewInt64Coin("stake", 500)))

		_, err := ms.Release(f.ctx, mustReleaseMsg(t, stranger, "97", user, "stake"))
		require.ErrorIs(t, err, types.ErrInvalidAction)
		require.Contains(t, err.Error(), "caller is not the admin")

		// the owner is not the admin either
		_, err = ms.Release(f.ctx, mustReleaseMsg(t, owner, "97", user, "stake"))
		require.ErrorIs(t, err, types.ErrInvalidAction)
	})

	t.Run("fails without an admin", func(t *testing.T) {
		f := initFixture(t)
		initializeContract(t, f, owner, 3)
		ms := keeper.NewMsgServerImpl(f.keeper)

		_, err := ms.Release(f.ctx, mustReleaseMsg(t, admin, "97", user, "stake"))
		require.ErrorIs(t, err, types.ErrMissingValue)
	})

	t.Run("fails on insufficient admin balance", func(t *testing.T) {
		f, ms := setup(t)
		f.bankKeeper.setBalance(adminAcc, sdk.NewCoins(sdk.NewInt64Coin("stake", 10)))

		_, err := ms.Release(f.ctx, mustReleaseMsg(t, admin, "97", user, "stake"))
		require.ErrorIs(t, err, types.ErrInvalidAction)
		require.Contains(t, err.Error(), "insufficient admin balance")

		require.True(t, f.bankKeeper.SpendableCoins(f.ctx, userAcc).AmountOf("stake").IsZero())
	})

	t.Run("rejects reentrant calls", func(t *testing.T) {
		f, ms := setup(t)
		f.bankKeeper.setBalance(adminAcc, sdk.NewCoins(sdk.NewInt64Coin("stake", 500)))

		require.NoError(t, f.keeper.ReentrancyGuard.Set(f.ctx, true))

		_, err := ms.Release(f.ctx, mustReleaseMsg(t, admin, "97", user, "stake"))
		require.ErrorIs(t, err, types.ErrInvalidAction)
		require.Contains(t, err.Error(), "reentrant call")
	})
}
