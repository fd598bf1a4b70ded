package types_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

func accAddr(i byte) string {
	bz := make([]byte, 20)
	bz[0] = i
	return sdk.AccAddress(bz).String()
}

func TestGenesisStateValidate(t *testing.T) {
	owner := accAddr(1)
	admin := accAddr(2)

	testCases := []struct {
		name     string
		genState *types.GenesisState
		valid    bool
	}{
		{
			name:     "default is valid",
			genState: types.DefaultGenesis(),
			valid:    true,
		},
		{
			name: "initialized with owner and fee",
			genState: &types.GenesisState{
				Params:      types.DefaultParams(),
				Initialized: true,
				Owner:       owner,
				Config:      types.Config{FeePercentage: 3},
				Admin:       admin,
			},
			valid: true,
		},
		{
			name: "state present but not initialized",
			genState: &types.GenesisState{
				Params: types.DefaultParams(),
				Owner:  owner,
			},
			valid: false,
		},
		{
			name: "initialized without owner",
			genState: &types.GenesisState{
				Params:      types.DefaultParams(),
				Initialized: true,
				Config:      types.Config{FeePercentage: 3},
			},
			valid: false,
		},
		{
			name: "fee percentage out of range",
			genState: &types.GenesisState{
				Params:      types.DefaultParams(),
				Initialized: true,
				Owner:       owner,
				Config:      types.Config{FeePercentage: 101},
			},
			valid: false,
		},
		{
			name: "invalid admin address",
			genState: &types.GenesisState{
				Params:      types.DefaultParams(),
				Initialized: true,
				Owner:       owner,
				Config:      types.Config{FeePercentage: 3},
				Admin:       "not_bech32",
			},
			valid: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
