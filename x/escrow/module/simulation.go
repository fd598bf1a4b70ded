package escrow

import (
	"math/rand"

	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	"github.com/cosmos/cosmos-sdk/x/simulation"

	escrowsimulation "github.com/bridgelabs/bridgechain/x/escrow/simulation"
	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

// GenerateGenesisState creates a randomized GenState of the module.
func (AppModule) GenerateGenesisState(simState *module.SimulationState) {
	escrowGenesis := types.GenesisState{
		Params: types.DefaultParams(),
	}
	simState.GenState[types.ModuleName] = simState.Cdc.MustMarshalJSON(&escrowGenesis)
}

// RegisterStoreDecoder registers a decoder.
func (am AppModule) RegisterStoreDecoder(_ simtypes.StoreDecoderRegistry) {}

// WeightedOperations returns the all the gov module operations with their respective weights.
func (am AppModule) WeightedOperations(simState module.SimulationState) []simtypes.WeightedOperation {
	operations := make([]simtypes.WeightedOperation, 0)
	const (
		opWeightMsgLock          = "op_weight_msg_escrow"
		defaultWeightMsgLock int = 100
	)

	var weightMsgLock int
	simState.AppParams.GetOrGenerate(opWeightMsgLock, &weightMsgLock, nil,
		func(_ *rand.Rand) {
			weightMsgLock = defaultWeightMsgLock
		},
	)
	operations = append(operations, simulation.NewWeightedOperation(
		weightMsgLock,
		escrowsimulation.SimulateMsgLock(am.authKeeper, am.bankKeeper, am.keeper, simState.TxConfig),
	))
	const (
		opWeightMsgRelease          = "op_weight_msg_escrow"
		defaultWeightMsgRelease int = 100
	)

	var weightMsgRelease int
	simState.AppParams.GetOrGenerate(opWeightMsgRelease, &weightMsgRelease, nil,
		func(_ *rand.Rand) {
			weightMsgRelease = defaultWeightMsgRelease
		},
	)
	operations = append(operations, simulation.NewWeightedOperation(
		weightMsgRelease,
		escrowsimulation.SimulateMsgRelease(am.authKeeper, am.bankKeeper, am.keeper, simState.TxConfig),
	))

	return operations
}

// ProposalMsgs returns msgs used for governance proposals for simulations.
func (am AppModule) ProposalMsgs(simState module.SimulationState) []simtypes.WeightedProposalMsg {
	return []simtypes.WeightedProposalMsg{}
}
