package types

// Event types emitted by the escrow module. The names are shared with
// pkg/wsserver, which subscribes to them on the CometBFT event bus.
const (
	EventTypeLock             = "lock"
	EventTypeRelease          = "release"
	EventTypeAdminAdded       = "admin_added"
	EventTypeAdminRemoved     = "admin_removed"
	EventTypeContractPaused   = "contract_paused"
	EventTypeContractUnpaused = "contract_unpaused"
)

// Event attribute keys.
const (
	AttributeKeyUser          = "user"
	AttributeKeyAdmin         = "admin"
	AttributeKeyFromDenom     = "from_denom"
	AttributeKeyDestToken     = "dest_token"
	AttributeKeyInAmount      = "in_amount"
	AttributeKeySwappedAmount = "swapped_amount"
	AttributeKeyRecipient     = "recipient"
	AttributeKeyDestChain     = "dest_chain"
	AttributeKeyDenom         = "denom"
	AttributeKeyAmount        = "amount"
)
