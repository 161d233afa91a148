package store

// ConnectionState describes the link between the process and its backing store.
// The numeric values follow the conventional driver ready-state numbering.
type ConnectionState int32

// Connection states
const (
	StateDisconnected  ConnectionState = 0
	StateConnected     ConnectionState = 1
	StateConnecting    ConnectionState = 2
	StateDisconnecting ConnectionState = 3
)

// String returns the label reported by the readiness endpoint.
func (s ConnectionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnected:
		return "connected"
	case StateConnecting:
		return "connecting"
	case StateDisconnecting:
		return "disconnecting"
	default:
		return "unknown"
	}
}

// ConnectionStateReader exposes the latest known connection state.
// Implementations must never block.
type ConnectionStateReader interface {
	ConnectionState() ConnectionState
}

// StaticConnectionState is a ConnectionStateReader that always reports the
// same state. It is useful when no connector is wired, and in tests.
type StaticConnectionState ConnectionState

// ConnectionState implements ConnectionStateReader.
func (s StaticConnectionState) ConnectionState() ConnectionState {
	return ConnectionState(s)
}
