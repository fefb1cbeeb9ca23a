package redis

type PlayerStatus string

const (
	StatusOnline  PlayerStatus = "online"
	StatusOffline PlayerStatus = "offline"
	StatusPlaying PlayerStatus = "playing"
)

// PlayerPresence is the Redis-mirrored view of a registry binding. The
// in-memory registry stays authoritative; this record only exists so the
// HTTP layer can answer presence queries without reaching into the socket
// process state.
type PlayerPresence struct {
	Username string       `json:"username"`
	Status   PlayerStatus `json:"status"`
	LastPing int64        `json:"last_ping"` // Unix timestamp
	SocketID string       `json:"socket_id"` // For direct messaging
}
