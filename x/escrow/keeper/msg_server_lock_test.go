package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/bridgelabs/bridgechain/x/escrow/keeper"
	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

func mustLockMsg(t *testing.T, creator, denom, amount string) *types.MsgLock {
	t.Helper()
	msg, err := types.NewMsgLock(creator, denom, "wSTAKE", amount, []byte{0x01}, "0xabc123")
	require.NoError(t, err)
	return msg
}

func TestMsgLock(t *testing.T) {
	owner := testAddr(1)
	admin := testAddr(2)
	user := testAddr(3)
	userAcc := sdk.MustAccAddressFromBech32(user)
	adminAcc := sdk.MustAccAddressFromBech32(admin)
	custodyAcc := authtypes.NewModuleAddress(types.ModuleName)

	setup := func(t *testing.T, feePercentage int64) (*fixture, types.MsgServer) {
		f := initFixture(t)
		initializeContract(t, f, owner, feePercentage)
		ms := keeper.NewMsgServerImpl(f.keeper)
		_, err := ms.AddAdmin(f.ctx, types.NewMsgAddAdmin(owner, admin))
		require.NoError(t, err)
		return f, ms
	}

	t.Run("deducts the fee and forwards the remainder", func(t *testing.T) {
		f, ms := setup(t, 3)
		f.bankKeeper.setBalance(userAcc, sdk.NewCoins(sdk.NewInt64Coin("stake", 1000)))

		res, err := ms.Lock(f.ctx, mustLockMsg(t, user, "stake", "100"))
		require.NoError(t, err)
		require.Equal(t, math.NewInt(97), res.SwappedAmount)

		// user paid the full amount
		require.Equal(t, math.NewInt(900), f.bankKeeper.SpendableCoins(f.ctx, userAcc).AmountOf("stake"))
		// admin received the post-fee amount
		require.Equal(t, math.NewInt(97), f.bankKeeper.SpendableCoins(f.ctx, adminAcc).AmountOf("stake"))
		// the fee stays in custody
		require.Equal(t, math.NewInt(3), f.bankKeeper.SpendableCoins(f.ctx, custodyAcc).AmountOf("stake"))
	})

	t.Run("records the lock snapshot", func(t *testing.T) {
		f, ms := setup(t, 3)
		f.bankKeeper.setBalance(userAcc, sdk.NewCoins(sdk.NewInt64Coin("stake", 100)))

		_, err := ms.Lock(f.ctx, mustLockMsg(t, user, "stake", "100"))
		require.NoError(t, err)

		lock, err := f.keeper.LastLock.Get(f.ctx)
		require.NoError(t, err)
		require.Equal(t, user, lock.User)
		require.Equal(t, "stake", lock.FromDenom)
		require.Equal(t, "wSTAKE", lock.DestToken)
		require.Equal(t, math.NewInt(100), lock.InAmount)
		require.Equal(t, math.NewInt(97), lock.SwappedAmount)
		require.Equal(t, "0xabc123", lock.Recipient)
		require.Equal(t, []byte{0x01}, lock.DestChain)
	})

	t.Run("emits a lock event", func(t *testing.T) {
		f, ms := setup(t, 3)
		f.bankKeeper.setBalance(userAcc, sdk.NewCoins(sdk.NewInt64Coin("stake", 100)))

		_, err := ms.Lock(f.ctx, mustLockMsg(t, user, "stake", "100"))
		require.NoError(t, err)

		var found bool
		for _, ev := range f.ctx.EventManager().Events() {
			if ev.Type == types.EventTypeLock {
				found = true
			}
		}
		require.True(t, found)
	})

	t.Run("zero fee forwards everything", func(t *testing.T) {
		f, ms := setup(t, 0)
		f.bankKeeper.setBalance(userAcc, sdk.NewCoins(sdk.NewInt64Coin("stake", 100)))

		res, err := ms.Lock(f.ctx, mustLockMsg(t, user, "stake", "100"))
		require.NoError(t, err)
		require.Equal(t, math.NewInt(100), res.SwappedAmount)
		require.True(t, f.bankKeeper.SpendableCoins(f.ctx, custodyAcc).AmountOf("stake").IsZero())
	})

	t.Run("integer fee truncates to zero on tiny amounts", func(t *testing.T) {
		// 99% of 1 truncates to 0, so the full token is forwarded
		f, ms := setup(t, 99)
		f.bankKeeper.setBalance(userAcc, sdk.NewCoins(sdk.NewInt64Coin("stake", 1)))

		res, err := ms.Lock(f.ctx, mustLockMsg(t, user, "stake", "1"))
		require.NoError(t, err)
		require.Equal(t, math.NewInt(1), res.SwappedAmount)
	})

	t.Run("rejects a lock that nets to zero", func(t *testing.T) {
		f, ms := setup(t, 100)
		f.bankKeeper.setBalance(userAcc, sdk.NewCoins(sdk.NewInt64Coin("stake", 1)))

		_, err := ms.Lock(f.ctx, mustLockMsg(t, user, "stake", "1"))
		require.ErrorIs(t, err, types.ErrInvalidAction)
		require.Contains(t, err.Error(), "amount after fee must be at least 1")

		// nothing moved, nothing recorded
		require.Equal(t, math.NewInt(1), f.bankKeeper.SpendableCoins(f.ctx, userAcc).AmountOf("stake"))
	})

	t.Run("fails without an admin", func(t *testing.T) {
		f := initFixture(t)
		initializeContract(t, f, owner, 3)
		ms := keeper.NewMsgServerImpl(f.keeper)
		f.bankKeeper.setBalance(userAcc, sdk.NewCoins(sdk.NewInt64Coin("stake", 100)))

		_, err := ms.Lock(f.ctx, mustLockMsg(t, user, "stake", "100"))
		require.ErrorIs(t, err, types.ErrMissingValue)
		require.Contains(t, err.Error(), "no admin is set")
	})

	t.Run("fails on insufficient balance", func(t *testing.T) {
		f, ms := setup(t, 3)
		f.bankKeeper.setBalance(userAcc, sdk.NewCoins(sdk.NewInt64Coin("stake", 50)))

		_, err := ms.Lock(f.ctx, mustLockMsg(t, user, "stake", "100"))
		require.ErrorIs(t, err, types.ErrInvalidAction)
		require.Contains(t, err.Error(), "insufficient balance")
	})

	t.Run("rejects reentrant calls", func(t *testing.T) {
		f, ms := setup(t, 3)
		f.bankKeeper.setBalance(userAcc, sdk.NewCoins(sdk.NewInt64Coin("stake", 100)))

		require.NoError(t, f.keeper.ReentrancyGuard.Set(f.ctx, true))

		_, err := ms.Lock(f.ctx, mustLockMsg(t, user, "stake", "100"))
		require.ErrorIs(t, err, types.ErrInvalidAction)
		require.Contains(t, err.Error(), "reentrant call")
	})

	t.Run("guard is released after a failed lock", func(t *testing.T) {
		f, ms := setup(t, 3)
		f.bankKeeper.setBalance(userAcc, sdk.NewCoins(sdk.NewInt64Coin("stake", 50)))

		_, err := ms.Lock(f.ctx, mustLockMsg(t, user, "stake", "100"))
		require.Error(t, err)

		held, err := f.keeper.ReentrancyGuard.Has(f.ctx)
		require.NoError(t, err)
		require.False(t, held)

		// the entry point is usable again
		f.bankKeeper.setBalance(userAcc, sdk.NewCoins(sdk.NewInt64Coin("stake", 100)))
		_, err = ms.Lock(f.ctx, mustLockMsg(t, user, "stake", "100"))
		require.NoError(t, err)
	})
}
