package wsserver

// Message type constants for WebSocket protocol
const (
	// Client -> Server message types
	MsgTypeSubscribe   = "subscribe"
	MsgTypeUnsubscribe = "unsubscribe"
	MsgTypePing        = "ping"

	// Server -> Client event types
	EventSnapshot = "snapshot" // Latest lock record sent on subscribe
	EventError    = "error"    // Error message
	EventPong     = "pong"     // Response to ping
)

// Subscription topics (match the escrow module event types). A relayer
// watches the lock topic to mirror releases on the counterparty chain.
const (
	TopicLock    = "lock"
	TopicRelease = "release"
)
