package handlers

import (
	"log"

	models "Damka/models/postgres"
	"Damka/services/presence"
	"Damka/services/sessions"
	socketio_utils "Damka/services/socket_io/utils"

	"github.com/gin-gonic/gin"
)

// The snakes variant gets its board from the server: one layout generated at
// session start and sent verbatim to both players, so neither client has to
// be trusted with the randomness.

func HandleSnakesGameStart(games *sessions.Manager, conn presence.Conn) func(args ...interface{}) {
	return func(args ...interface{}) {
		data, ok := socketio_utils.ParsePayload(args...)
		if !ok {
			log.Printf("[SNAKES-ERROR] Malformed snakes-game-start payload from socket %s, dropped", conn.ID())
			return
		}

		senderID, ok1 := socketio_utils.RequireString(data, "senderId")
		receiverID, ok2 := socketio_utils.RequireString(data, "receiverId")
		if !ok1 || !ok2 {
			log.Printf("[SNAKES-ERROR] snakes-game-start missing participants, dropped")
			return
		}

		session, receiverConn, ok := games.Start(models.GameTypeSnakesLadders, senderID, receiverID)
		if !ok {
			return
		}

		payload := gin.H{
			"turn":    session.Turn,
			"snakes":  session.Board.Snakes,
			"ladders": session.Board.Ladders,
		}

		receiverConn.Emit("snakes-game-start", payload)
		conn.Emit("snakes-game-start", payload)
	}
}

func HandleSnakesMove(games *sessions.Manager, conn presence.Conn) func(args ...interface{}) {
	return func(args ...interface{}) {
		data, ok := socketio_utils.ParsePayload(args...)
		if !ok {
			log.Printf("[SNAKES-ERROR] Malformed snakes-move payload from socket %s, dropped", conn.ID())
			return
		}

		senderID, ok1 := socketio_utils.RequireString(data, "senderId")
		receiverID, ok2 := socketio_utils.RequireString(data, "receiverId")
		if !ok1 || !ok2 {
			log.Printf("[SNAKES-ERROR] snakes-move missing participants, dropped")
			return
		}

		receiverConn, ok := games.RecordMove(senderID, receiverID)
		if !ok {
			return
		}
		if receiverConn != nil {
			receiverConn.Emit("snakes-move", data)
		}
	}
}

func HandleSnakesGameOver(games *sessions.Manager, conn presence.Conn) func(args ...interface{}) {
	return func(args ...interface{}) {
		data, ok := socketio_utils.ParsePayload(args...)
		if !ok {
			log.Printf("[SNAKES-ERROR] Malformed snakes-game-over payload from socket %s, dropped", conn.ID())
			return
		}

		senderID, ok1 := socketio_utils.RequireString(data, "senderId")
		receiverID, ok2 := socketio_utils.RequireString(data, "receiverId")
		winner, ok3 := socketio_utils.RequireString(data, "winner")
		if !ok1 || !ok2 || !ok3 {
			log.Printf("[SNAKES-ERROR] snakes-game-over missing required fields, dropped")
			return
		}

		targetConn, ok := games.End(senderID, receiverID, winner)
		if !ok {
			return
		}
		if targetConn != nil {
			targetConn.Emit("snakes-game-over", data)
		}
		conn.Emit("snakes-game-over", data)
	}
}
