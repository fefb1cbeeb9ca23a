package invites

import (
	"errors"
	"testing"

	models "Damka/models/postgres"
	"Damka/services/presence"

	"github.com/stretchr/testify/assert"
)

type fakeConn struct {
	id string
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) Emit(event string, payload interface{}) error { return nil }

type fakeStore struct {
	saved []*models.Invite
	err   error
}

func (s *fakeStore) Save(invite *models.Invite) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, invite)
	return nil
}

func TestCreateHappyPath(t *testing.T) {
	registry := presence.NewRegistry()
	bobConn := &fakeConn{id: "sock-bob"}
	registry.Register("bob", bobConn)

	store := &fakeStore{}
	broker := NewBroker(store, registry)

	conn, ok := broker.Create("alice", "bob", models.GameTypeCheckers)

	assert.True(t, ok)
	assert.Equal(t, bobConn, conn)

	assert.Len(t, store.saved, 1)
	invite := store.saved[0]
	assert.Equal(t, "alice", invite.SenderID)
	assert.Equal(t, "bob", invite.ReceiverID)
	assert.Equal(t, models.GameTypeCheckers, invite.GameType)
	assert.Equal(t, models.InviteStatusPending, invite.Status)
	assert.False(t, invite.CreatedAt.IsZero())
}

func TestCreateOfflineReceiverStillPersists(t *testing.T) {
	store := &fakeStore{}
	broker := NewBroker(store, presence.NewRegistry())

	conn, ok := broker.Create("alice", "bob", models.GameTypeSnakesLadders)

	assert.True(t, ok)
	assert.Nil(t, conn)
	assert.Len(t, store.saved, 1)
}

func TestCreatePersistenceFailureIsSwallowed(t *testing.T) {
	registry := presence.NewRegistry()
	registry.Register("bob", &fakeConn{id: "sock-bob"})

	store := &fakeStore{err: errors.New("connection refused")}
	broker := NewBroker(store, registry)

	conn, ok := broker.Create("alice", "bob", models.GameTypeCheckers)

	assert.False(t, ok)
	assert.Nil(t, conn)
}

func TestCreateValidation(t *testing.T) {
	store := &fakeStore{}
	broker := NewBroker(store, presence.NewRegistry())

	_, ok := broker.Create("", "bob", models.GameTypeCheckers)
	assert.False(t, ok)

	_, ok = broker.Create("alice", "", models.GameTypeCheckers)
	assert.False(t, ok)

	_, ok = broker.Create("alice", "bob", "chess")
	assert.False(t, ok)

	assert.Empty(t, store.saved, "invalid invites must never reach the store")
}

func TestAcceptResolvesSender(t *testing.T) {
	registry := presence.NewRegistry()
	aliceConn := &fakeConn{id: "sock-alice"}
	registry.Register("alice", aliceConn)

	broker := NewBroker(&fakeStore{}, registry)

	conn, ok := broker.Accept("alice", "bob")
	assert.True(t, ok)
	assert.Equal(t, aliceConn, conn)
}

func TestAcceptOfflineSenderIsDropped(t *testing.T) {
	broker := NewBroker(&fakeStore{}, presence.NewRegistry())

	conn, ok := broker.Accept("alice", "bob")
	assert.False(t, ok)
	assert.Nil(t, conn)
}
