package presence

import (
	"log"
	"sync"
)

// Conn is the transport-level handle the registry binds user IDs to. It is
// the only thing the rest of the code knows about a socket, which keeps the
// broker and session manager testable without a live connection.
type Conn interface {
	ID() string
	Emit(event string, payload interface{}) error
}

// Registry tracks which users are currently connected. One live binding per
// user ID: a new registration for the same ID replaces the previous one.
type Registry struct {
	mu    sync.RWMutex
	users map[string]Conn
}

func NewRegistry() *Registry {
	return &Registry{
		users: make(map[string]Conn),
	}
}

// Register binds userID to conn, replacing any previous binding
// (last-register-wins). An empty userID is rejected rather than stored.
func (r *Registry) Register(userID string, conn Conn) {
	if userID == "" {
		log.Printf("[REGISTER-ERROR] Empty userId from socket %s, binding rejected", conn.ID())
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[userID] = conn
	log.Printf("[REGISTER] User %s connected with socket ID: %s", userID, conn.ID())
}

// Lookup returns the live connection bound to userID, if any.
func (r *Registry) Lookup(userID string) (Conn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, exists := r.users[userID]
	return conn, exists
}

// RemoveByConn deletes every binding whose connection matches connID and
// returns the user IDs that were removed. A single scan handles the case
// where a user re-registered elsewhere and the old socket is still bound
// under a stale ID.
func (r *Registry) RemoveByConn(connID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []string
	for userID, conn := range r.users {
		if conn.ID() == connID {
			delete(r.users, userID)
			removed = append(removed, userID)
		}
	}
	return removed
}
