package cmd

import (
	cmtcfg "github.com/cometbft/cometbft/config"
	serverconfig "github.com/cosmos/cosmos-sdk/server/config"
)

// initCometBFTConfig helps to override default CometBFT Config values.
// return cmtcfg.DefaultConfig if no custom configuration is required for the application.
func initCometBFTConfig() *cmtcfg.Config {
	cfg := cmtcfg.DefaultConfig()

	// these values put a higher strain on node memory
	// cfg.P2P.MaxNumInboundPeers = 100
	// cfg.P2P.MaxNumOutboundPeers = 40

	return cfg
}

// WSServerConfig defines configuration for the embedded WebSocket event server
type WSServerConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Port          string `mapstructure:"port"`
	CometBFTWSURL string `mapstructure:"cometbft_ws_url"`
	GRPCAddress   string `mapstructure:"grpc_address"`
}

// initAppConfig helps to override default appConfig template and configs.
// return "", nil if no custom configuration is required for the application.
func initAppConfig() (string, interface{}) {
	type CustomAppConfig struct {
		serverconfig.Config `mapstructure:",squash"`
		WSServer            WSServerConfig `mapstructure:"wsserver"`
	}

	// Optionally allow the chain developer to overwrite the SDK's default
	// server config.
	srvCfg := serverconfig.DefaultConfig()
	// The SDK's default minimum gas price is set to "" (empty value) inside
	// app.toml. If left empty by validators, the node will halt on startup.
	// However, the chain developer can set a default app.toml value for their
	// validators here.
	//
	// In summary:
	// - if you leave srvCfg.MinGasPrices = "", all validators MUST tweak their
	//   own app.toml config,
	// - if you set srvCfg.MinGasPrices non-empty, validators CAN tweak their
	//   own app.toml to override, or use this default value.
	//
	// In tests, we set the min gas prices to 0.
	// srvCfg.MinGasPrices = "0stake"

	customAppConfig := CustomAppConfig{
		Config: *srvCfg,
		WSServer: WSServerConfig{
			Enabled:       false,
			Port:          ":8585",
			CometBFTWSURL: "ws://localhost:26657/websocket",
			GRPCAddress:   "localhost:9090",
		},
	}

	customAppTemplate := serverconfig.DefaultConfigTemplate + `
###############################################################################
###                        WebSocket Event Server                           ###
###############################################################################

[wsserver]
# Enable or disable the embedded WebSocket event server
enabled = {{ .WSServer.Enabled }}

# Listen address for observer connections
port = "{{ .WSServer.Port }}"

# CometBFT websocket endpoint to subscribe to escrow events
cometbft_ws_url = "{{ .WSServer.CometBFTWSURL }}"

# gRPC endpoint used to answer lock snapshot requests
grpc_address = "{{ .WSServer.GRPCAddress }}"
`

	return customAppTemplate, customAppConfig
}
