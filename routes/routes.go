package routes

import (
	"Damka/controllers"
	"Damka/services/redis"
	utils "Damka/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient) {
	// utils global
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.GET("/users/online", controllers.GetOnlineUsers(redisClient))

	api.GET("/users/:username/presence", controllers.GetUserPresence(redisClient))

	invites := api.Group("/invites")
	{
		invites.GET("/:username", controllers.GetUserInvites(db))

		invites.PATCH("/accept", controllers.AcceptInvite(db))

		invites.PATCH("/decline", controllers.DeclineInvite(db))
	}
}
