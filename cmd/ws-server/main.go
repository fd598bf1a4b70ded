package main

import (
	"log"

	"github.com/bridgelabs/bridgechain/pkg/wsserver"
)

// Standalone WebSocket event server. Observers (the cross-chain relayer
// included) connect here to follow escrow lock and release events without
// running their own node subscription.
func main() {
	cfg := wsserver.ConfigFromEnv()

	log.Printf("Starting escrow event server (cometbft: %s, grpc: %s)", cfg.CometBFTWSURL, cfg.GRPCAddress)
	if err := wsserver.Start(cfg); err != nil {
		log.Fatalf("ws-server exited: %v", err)
	}
}
