package handlers

import (
	"log"

	"Damka/services/presence"
	"Damka/services/redis"
)

// HandleDisconnecting clears every registry binding held by the closing
// socket and its Redis presence mirror. Sessions the user was part of are
// left in place; the remaining participant simply stops receiving relays.
func HandleDisconnecting(registry *presence.Registry, redisClient *redis.RedisClient,
	conn presence.Conn) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[DISCONNECT] Socket %s disconnecting", conn.ID())

		removed := registry.RemoveByConn(conn.ID())
		for _, userID := range removed {
			if redisClient == nil {
				continue
			}
			if err := redisClient.DeletePlayerPresence(userID); err != nil {
				log.Printf("[DISCONNECT-ERROR] Error clearing presence mirror for %s: %v", userID, err)
			}
		}

		log.Printf("[DISCONNECT-DONE] Socket %s removed, %d binding(s) cleared", conn.ID(), len(removed))
	}
}
