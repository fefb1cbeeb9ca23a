package handlers

import (
	"log"

	"Damka/services/invites"
	"Damka/services/presence"
	socketio_utils "Damka/services/socket_io/utils"
)

// HandleInvite persists a new invite and, when the receiver is online,
// forwards the original payload to them as receive-invite. The sender gets
// no acknowledgment either way.
func HandleInvite(broker *invites.Broker, conn presence.Conn) func(args ...interface{}) {
	return func(args ...interface{}) {
		data, ok := socketio_utils.ParsePayload(args...)
		if !ok {
			log.Printf("[INVITE-ERROR] Malformed invite payload from socket %s, dropped", conn.ID())
			return
		}

		senderID, ok1 := socketio_utils.RequireString(data, "senderId")
		receiverID, ok2 := socketio_utils.RequireString(data, "receiverId")
		gameType, ok3 := socketio_utils.RequireString(data, "gameType")
		if !ok1 || !ok2 || !ok3 {
			log.Printf("[INVITE-ERROR] invite missing required fields from socket %s, dropped", conn.ID())
			return
		}

		receiverConn, ok := broker.Create(senderID, receiverID, gameType)
		if !ok {
			return
		}
		if receiverConn != nil {
			receiverConn.Emit("receive-invite", data)
		}
	}
}

// HandleAcceptInvite relays the acceptance back to the original sender as
// invite-accepted. No status mutation happens here; that belongs to the
// REST surface.
func HandleAcceptInvite(broker *invites.Broker, conn presence.Conn) func(args ...interface{}) {
	return func(args ...interface{}) {
		data, ok := socketio_utils.ParsePayload(args...)
		if !ok {
			log.Printf("[ACCEPT-ERROR] Malformed accept-invite payload from socket %s, dropped", conn.ID())
			return
		}

		senderID, ok1 := socketio_utils.RequireString(data, "senderId")
		receiverID, ok2 := socketio_utils.RequireString(data, "receiverId")
		if !ok1 || !ok2 {
			log.Printf("[ACCEPT-ERROR] accept-invite missing required fields from socket %s, dropped", conn.ID())
			return
		}

		senderConn, ok := broker.Accept(senderID, receiverID)
		if !ok {
			return
		}
		senderConn.Emit("invite-accepted", data)
	}
}
