package handlers

import (
	"log"
	"time"

	redis_models "Damka/models/redis"
	"Damka/services/presence"
	"Damka/services/redis"
)

// HandleRegister binds the connection to the userId the client announces.
// The original web client sends the id as a bare string; an object payload
// with a userId field is accepted too.
func HandleRegister(registry *presence.Registry, redisClient *redis.RedisClient,
	conn presence.Conn) func(args ...interface{}) {
	return func(args ...interface{}) {
		var userID string
		if len(args) > 0 {
			switch v := args[0].(type) {
			case string:
				userID = v
			case map[string]interface{}:
				userID, _ = v["userId"].(string)
			}
		}

		if userID == "" {
			log.Printf("[REGISTER-ERROR] register without userId from socket %s, dropped", conn.ID())
			return
		}

		registry.Register(userID, conn)

		// Best-effort mirror for the HTTP presence endpoints; the in-memory
		// registry stays authoritative either way.
		if redisClient != nil {
			record := &redis_models.PlayerPresence{
				Username: userID,
				Status:   redis_models.StatusOnline,
				LastPing: time.Now().Unix(),
				SocketID: conn.ID(),
			}
			if err := redisClient.SetPlayerPresence(record); err != nil {
				log.Printf("[REGISTER-ERROR] Error mirroring presence for %s: %v", userID, err)
			}
		}
	}
}
