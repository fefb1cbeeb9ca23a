package controllers

import (
	"Damka/services/redis"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetOnlineUsers godoc
// @Summary List online users
// @Description Read the Redis presence mirror for every currently connected user
// @Tags Presence
// @Produce json
// @Success 200 {object} map[string]interface{} "users"
// @Failure 500 {object} map[string]string "error: Error retrieving online users"
// @Router /users/online [get]
func GetOnlineUsers(redisClient *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := redisClient.GetOnlineUsers()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving online users"})
			return
		}
		if users == nil {
			users = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}

// GetUserPresence godoc
// @Summary Get a user's presence record
// @Description Read the mirrored presence record (status, last ping, socket id) for one user
// @Tags Presence
// @Produce json
// @Param username path string true "User id"
// @Success 200 {object} map[string]interface{} "presence"
// @Failure 404 {object} map[string]string "error: User not online"
// @Router /users/{username}/presence [get]
func GetUserPresence(redisClient *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		record, err := redisClient.GetPlayerPresence(username)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not online"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"presence": record})
	}
}
