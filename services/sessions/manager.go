package sessions

import (
	"log"
	"math/rand"
	"sync"
	"time"

	models "Damka/models/postgres"
	"Damka/services/board"
	"Damka/services/presence"
)

// Session is the in-memory record of an active two-player game. The same
// *Session is stored under both participant IDs so lookups work from either
// side. Turn always starts with the player who initiated the game.
type Session struct {
	Player1  string
	Player2  string
	GameType string
	Turn     string
	Board    *board.Layout // only set for the snakes variant
}

// Manager owns the session table. It never validates game-move legality;
// it only tracks who is playing whom and whose turn the clients should
// render next.
type Manager struct {
	mu       sync.Mutex
	games    map[string]*Session
	registry *presence.Registry
	rng      *rand.Rand
}

func NewManager(registry *presence.Registry) *Manager {
	return &Manager{
		games:    make(map[string]*Session),
		registry: registry,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start creates a session between sender and receiver. The receiver must be
// online, otherwise the game silently fails to start (the invite flow is
// fire-and-forget, so an offline receiver just never gets a game). Turn is
// assigned to the sender. The snakes variant generates its board layout here
// so both players are sent the identical board.
func (m *Manager) Start(gameType, senderID, receiverID string) (*Session, presence.Conn, bool) {
	if senderID == "" || receiverID == "" || senderID == receiverID {
		log.Printf("[GAME-ERROR] Invalid participants %q vs %q, game not started", senderID, receiverID)
		return nil, nil, false
	}

	receiverConn, exists := m.registry.Lookup(receiverID)
	if !exists {
		log.Printf("[GAME] Receiver %s is offline, %s game from %s not started", receiverID, gameType, senderID)
		return nil, nil, false
	}

	session := &Session{
		Player1:  senderID,
		Player2:  receiverID,
		GameType: gameType,
		Turn:     senderID,
	}

	m.mu.Lock()
	if gameType == models.GameTypeSnakesLadders {
		layout := board.Generate(m.rng)
		session.Board = &layout
	}
	m.games[senderID] = session
	m.games[receiverID] = session
	m.mu.Unlock()

	log.Printf("[GAME] Starting %s game: %s vs %s", gameType, senderID, receiverID)
	return session, receiverConn, true
}

// RecordMove resolves the receiver's connection so the move payload can be
// relayed. For the snakes variant the session's turn flips to the receiver;
// checkers clients manage turns themselves, so the session is untouched.
// No-op when the pair has no session.
func (m *Manager) RecordMove(senderID, receiverID string) (presence.Conn, bool) {
	m.mu.Lock()
	session, exists := m.games[senderID]
	if !exists {
		m.mu.Unlock()
		log.Printf("[MOVE] No session for %s, move dropped", senderID)
		return nil, false
	}
	if session.GameType == models.GameTypeSnakesLadders {
		session.Turn = receiverID
	}
	m.mu.Unlock()

	conn, online := m.registry.Lookup(receiverID)
	if !online {
		log.Printf("[MOVE] Receiver %s is offline, move from %s not relayed", receiverID, senderID)
		return nil, true
	}
	return conn, true
}

// End removes the session and resolves the participant who should be told
// the game is over: the receiver when the sender won, otherwise the sender.
// The caller still echoes the payload back to the reporting socket.
func (m *Manager) End(senderID, receiverID, winner string) (presence.Conn, bool) {
	m.mu.Lock()
	_, exists := m.games[senderID]
	if !exists {
		m.mu.Unlock()
		log.Printf("[GAME-OVER] No session for %s, game over dropped", senderID)
		return nil, false
	}
	delete(m.games, senderID)
	delete(m.games, receiverID)
	m.mu.Unlock()

	target := senderID
	if winner == senderID {
		target = receiverID
	}

	log.Printf("[GAME-OVER] %s vs %s finished, winner: %s", senderID, receiverID, winner)

	conn, online := m.registry.Lookup(target)
	if !online {
		log.Printf("[GAME-OVER] Participant %s is offline, game over not relayed", target)
		return nil, true
	}
	return conn, true
}

// Session returns the active session a user is part of, if any.
func (m *Manager) Session(userID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, exists := m.games[userID]
	return session, exists
}
