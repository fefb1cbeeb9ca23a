package controllers

import (
	"github.com/gin-gonic/gin"
)

// Ping godoc
// @Summary Health check
// @Description Responds pong if the server is up
// @Tags Network
// @Produce json
// @Success 200 {object} map[string]string "message"
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(200, gin.H{"message": "pong"})
}
