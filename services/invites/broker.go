package invites

import (
	"log"
	"time"

	models "Damka/models/postgres"
	"Damka/services/presence"
)

// Store is the durable collaborator the broker persists invites through.
// The production implementation is GORM-backed; tests swap in a fake.
type Store interface {
	Save(invite *models.Invite) error
}

// Broker creates invite records and routes the live invite / accept
// notifications between the two users involved.
type Broker struct {
	store    Store
	registry *presence.Registry
}

func NewBroker(store Store, registry *presence.Registry) *Broker {
	return &Broker{store: store, registry: registry}
}

// Create validates and persists a new pending invite, then resolves the
// receiver's live connection. The returned conn is nil when the receiver is
// offline (the invite is still persisted; delivery is fire-and-forget). ok
// is false when validation or persistence failed, in which case nothing was
// stored and nothing should be emitted. Failures are logged, never surfaced
// to the sender.
func (b *Broker) Create(senderID, receiverID, gameType string) (receiver presence.Conn, ok bool) {
	if senderID == "" || receiverID == "" {
		log.Printf("[INVITE-ERROR] Missing senderId or receiverId, invite dropped")
		return nil, false
	}
	if !models.ValidGameType(gameType) {
		log.Printf("[INVITE-ERROR] Unknown gameType %q from %s, invite dropped", gameType, senderID)
		return nil, false
	}

	invite := &models.Invite{
		SenderID:   senderID,
		ReceiverID: receiverID,
		GameType:   gameType,
		Status:     models.InviteStatusPending,
		CreatedAt:  time.Now(),
	}

	if err := b.store.Save(invite); err != nil {
		log.Printf("[INVITE-ERROR] Error saving invite %s -> %s: %v", senderID, receiverID, err)
		return nil, false
	}

	log.Printf("[INVITE] Invite saved: %s -> %s (%s)", senderID, receiverID, gameType)

	conn, exists := b.registry.Lookup(receiverID)
	if !exists {
		log.Printf("[INVITE] Receiver %s is offline, invite persisted without live notification", receiverID)
		return nil, true
	}
	return conn, true
}

// Accept resolves the original sender's connection so the acceptance can be
// relayed back. The status mutation itself is the store/REST flow's job, not
// the relay's. Returns false when the sender is offline; the acceptance is
// silently dropped in that case.
func (b *Broker) Accept(senderID, receiverID string) (sender presence.Conn, ok bool) {
	if senderID == "" || receiverID == "" {
		log.Printf("[ACCEPT-ERROR] Missing senderId or receiverId, accept dropped")
		return nil, false
	}

	conn, exists := b.registry.Lookup(senderID)
	if !exists {
		log.Printf("[ACCEPT] Sender %s is offline, acceptance from %s dropped", senderID, receiverID)
		return nil, false
	}

	log.Printf("[ACCEPT] Invite %s -> %s accepted", senderID, receiverID)
	return conn, true
}
