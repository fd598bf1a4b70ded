package keeper_test

import (
	"context"
	"testing"

	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/bridgelabs/bridgechain/x/escrow/keeper"
	escrow "github.com/bridgelabs/bridgechain/x/escrow/module"
	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

type fixture struct {
	ctx        sdk.Context
	keeper     *keeper.Keeper
	bankKeeper *fakeBankKeeper
}

func initFixture(t *testing.T) *fixture {
	t.Helper()

	encCfg := moduletestutil.MakeTestEncodingConfig(escrow.AppModule{})
	addressCodec := addresscodec.NewBech32Codec(sdk.Bech32MainPrefix)
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	storeService := runtime.NewKVStoreService(storeKey)
	ctx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_test")).Ctx

	authority := authtypes.NewModuleAddress(types.GovModuleName)

	bankKeeper := newFakeBankKeeper()

	k := keeper.NewKeeper(
		storeService,
		encCfg.Codec,
		addressCodec,
		authority,
		bankKeeper,
	)

	require.NoError(t, k.Params.Set(ctx, types.DefaultParams()))

	return &fixture{
		ctx:        ctx,
		keeper:     k,
		bankKeeper: bankKeeper,
	}
}

// testAddr returns a deterministic bech32 account address for tests.
func testAddr(i byte) string {
	bz := make([]byte, 20)
	bz[0] = i
	return sdk.AccAddress(bz).String()
}

// initializeContract bootstraps the contract with the given owner and fee.
func initializeContract(t *testing.T, f *fixture, owner string, feePercentage int64) {
	t.Helper()
	ms := keeper.NewMsgServerImpl(f.keeper)
	_, err := ms.Initialize(f.ctx, types.NewMsgInitialize(owner, owner, feePercentage))
	require.NoError(t, err)
}

// fakeBankKeeper is an in-memory bank keeper. Module accounts are addressed
// the same way the real bank keeper addresses them.
type fakeBankKeeper struct {
	balances map[string]sdk.Coins
}

func newFakeBankKeeper() *fakeBankKeeper {
	return &fakeBankKeeper{balances: make(map[string]sdk.Coins)}
}

var _ types.BankKeeper = (*fakeBankKeeper)(nil)

func (bk *fakeBankKeeper) setBalance(addr sdk.AccAddress, coins sdk.Coins) {
	bk.balances[addr.String()] = coins
}

func (bk *fakeBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return bk.balances[addr.String()]
}

func (bk *fakeBankKeeper) SendCoins(_ context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	fromCoins, isNegative := bk.balances[from.String()].SafeSub(amt...)
	if isNegative {
		return types.ErrInvalidAction.Wrap("insufficient funds")
	}
	bk.balances[from.String()] = fromCoins
	bk.balances[to.String()] = bk.balances[to.String()].Add(amt...)
	return nil
}

func (bk *fakeBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, module string, to sdk.AccAddress, amt sdk.Coins) error {
	return bk.SendCoins(ctx, authtypes.NewModuleAddress(module), to, amt)
}

func (bk *fakeBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, from sdk.AccAddress, module string, amt sdk.Coins) error {
	return bk.SendCoins(ctx, from, authtypes.NewModuleAddress(module), amt)
}
