package handlers

import (
	"log"

	models "Damka/models/postgres"
	"Damka/services/presence"
	"Damka/services/sessions"
	socketio_utils "Damka/services/socket_io/utils"

	"github.com/gin-gonic/gin"
)

// The checkers variant keeps its board on the clients: the server relays
// whatever board representation they exchange and never inspects it.

func HandleCheckersGameStart(games *sessions.Manager, conn presence.Conn) func(args ...interface{}) {
	return func(args ...interface{}) {
		data, ok := socketio_utils.ParsePayload(args...)
		if !ok {
			log.Printf("[CHECKERS-ERROR] Malformed checkers-game-start payload from socket %s, dropped", conn.ID())
			return
		}

		senderID, ok1 := socketio_utils.RequireString(data, "senderId")
		receiverID, ok2 := socketio_utils.RequireString(data, "receiverId")
		if !ok1 || !ok2 {
			log.Printf("[CHECKERS-ERROR] checkers-game-start missing participants, dropped")
			return
		}

		session, receiverConn, ok := games.Start(models.GameTypeCheckers, senderID, receiverID)
		if !ok {
			return
		}

		payload := gin.H{"turn": session.Turn}
		if board, exists := data["board"]; exists {
			payload["board"] = board
		}

		receiverConn.Emit("checkers-game-start", payload)
		conn.Emit("checkers-game-start", payload)
	}
}

func HandleCheckersMove(games *sessions.Manager, conn presence.Conn) func(args ...interface{}) {
	return func(args ...interface{}) {
		data, ok := socketio_utils.ParsePayload(args...)
		if !ok {
			log.Printf("[CHECKERS-ERROR] Malformed checkers-move payload from socket %s, dropped", conn.ID())
			return
		}

		senderID, ok1 := socketio_utils.RequireString(data, "senderId")
		receiverID, ok2 := socketio_utils.RequireString(data, "receiverId")
		if !ok1 || !ok2 {
			log.Printf("[CHECKERS-ERROR] checkers-move missing participants, dropped")
			return
		}

		receiverConn, ok := games.RecordMove(senderID, receiverID)
		if !ok {
			return
		}
		if receiverConn != nil {
			receiverConn.Emit("checkers-move", data)
		}
	}
}

func HandleCheckersGameOver(games *sessions.Manager, conn presence.Conn) func(args ...interface{}) {
	return func(args ...interface{}) {
		data, ok := socketio_utils.ParsePayload(args...)
		if !ok {
			log.Printf("[CHECKERS-ERROR] Malformed checkers-game-over payload from socket %s, dropped", conn.ID())
			return
		}

		senderID, ok1 := socketio_utils.RequireString(data, "senderId")
		receiverID, ok2 := socketio_utils.RequireString(data, "receiverId")
		winner, ok3 := socketio_utils.RequireString(data, "winner")
		if !ok1 || !ok2 || !ok3 {
			log.Printf("[CHECKERS-ERROR] checkers-game-over missing required fields, dropped")
			return
		}

		targetConn, ok := games.End(senderID, receiverID, winner)
		if !ok {
			return
		}
		if targetConn != nil {
			targetConn.Emit("checkers-game-over", data)
		}
		conn.Emit("checkers-game-over", data)
	}
}
