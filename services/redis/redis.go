package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	redis_models "Damka/models/redis"
	redis_utils "Damka/services/redis/utils"

	"github.com/redis/go-redis/v9"
)

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(Addr string, DB int) *RedisClient {
	var client *redis.Client
	if Addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// SetPlayerPresence mirrors a registry binding into Redis: a JSON record
// under the presence key plus membership in the online set. Overwrites any
// previous record for the same username (last-register-wins, same as the
// in-memory registry).
func (rc *RedisClient) SetPlayerPresence(presence *redis_models.PlayerPresence) error {
	data, err := json.Marshal(presence)
	if err != nil {
		return fmt.Errorf("failed to marshal presence for %s: %v", presence.Username, err)
	}

	key := redis_utils.FormatPresenceKey(presence.Username)
	if err := rc.client.Set(rc.ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save presence for %s: %v", presence.Username, err)
	}

	if err := rc.client.SAdd(rc.ctx, redis_utils.FormatOnlineSetKey(), presence.Username).Err(); err != nil {
		return fmt.Errorf("failed to add %s to online set: %v", presence.Username, err)
	}

	return nil
}

// GetPlayerPresence returns the mirrored presence record for a username
func (rc *RedisClient) GetPlayerPresence(username string) (*redis_models.PlayerPresence, error) {
	data, err := rc.client.Get(rc.ctx, redis_utils.FormatPresenceKey(username)).Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to get presence for %s: %v", username, err)
	}

	var presence redis_models.PlayerPresence
	if err := json.Unmarshal(data, &presence); err != nil {
		return nil, fmt.Errorf("failed to unmarshal presence for %s: %v", username, err)
	}

	return &presence, nil
}

// DeletePlayerPresence removes the mirrored record and the online-set entry
func (rc *RedisClient) DeletePlayerPresence(username string) error {
	if err := rc.client.Del(rc.ctx, redis_utils.FormatPresenceKey(username)).Err(); err != nil {
		return fmt.Errorf("failed to delete presence for %s: %v", username, err)
	}

	if err := rc.client.SRem(rc.ctx, redis_utils.FormatOnlineSetKey(), username).Err(); err != nil {
		return fmt.Errorf("failed to remove %s from online set: %v", username, err)
	}

	return nil
}

// GetOnlineUsers lists every username currently in the online set
func (rc *RedisClient) GetOnlineUsers() ([]string, error) {
	users, err := rc.client.SMembers(rc.ctx, redis_utils.FormatOnlineSetKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list online users: %v", err)
	}
	return users, nil
}
