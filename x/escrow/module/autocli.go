package escrow

import (
	autocliv1 "cosmossdk.io/api/cosmos/autocli/v1"

	"github.com/bridgelabs/bridgechain/x/escrow/types"
)

// AutoCLIOptions implements the autocli.HasAutoCLIConfig interface.
func (am AppModule) AutoCLIOptions() *autocliv1.ModuleOptions {
	return &autocliv1.ModuleOptions{
		Query: &autocliv1.ServiceCommandDescriptor{
			Service: types.Query_serviceDesc.ServiceName,
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "Params",
					Use:       "params",
					Short:     "Shows the parameters of the module",
				},
				{
					RpcMethod: "Contract",
					Use:       "contract",
					Short:     "Query the contract governance state",
				},
				{
					RpcMethod: "Admin",
					Use:       "admin",
					Short:     "Query the current admin",
				},
				{
					RpcMethod: "LastLock",
					Use:       "last-lock",
					Short:     "Query the most recent lock record",
				},
			},
		},
		Tx: &autocliv1.ServiceCommandDescriptor{
			Service:              types.Msg_serviceDesc.ServiceName,
			EnhanceCustomCommand: true,
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "UpdateParams",
					Skip:      true, // skipped because authority gated
				},
				{
					RpcMethod:      "Initialize",
					Use:            "initialize [owner] [fee-percentage]",
					Short:          "Bootstrap the escrow contract with an owner and fee",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "owner"}, {ProtoField: "fee_percentage"}},
				},
				{
					RpcMethod:      "AddAdmin",
					Use:            "add-admin [admin]",
					Short:          "Send an add-admin tx",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "admin"}},
				},
				{
					RpcMethod: "RemoveAdmin",
					Use:       "remove-admin",
					Short:     "Send a remove-admin tx",
				},
				{
					RpcMethod: "Pause",
					Use:       "pause",
					Short:     "Pause the escrow contract",
				},
				{
					RpcMethod: "Unpause",
					Use:       "unpause",
					Short:     "Unpause the escrow contract",
				},
				{
					RpcMethod:      "Lock",
					Use:            "lock [from-denom] [dest-token] [in-amount] [dest-chain] [recipient]",
					Short:          "Lock tokens into escrow custody",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "from_denom"}, {ProtoField: "dest_token"}, {ProtoField: "in_amount"}, {ProtoField: "dest_chain"}, {ProtoField: "recipient"}},
				},
				{
					RpcMethod:      "Release",
					Use:            "release [amount] [user] [denom]",
					Short:          "Release tokens from the admin to a user",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "amount"}, {ProtoField: "user"}, {ProtoField: "denom"}},
				},
			},
		},
	}
}
