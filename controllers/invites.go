package controllers

import (
	models "Damka/models/postgres"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetUserInvites godoc
// @Summary Get pending invites for a user
// @Description Retrieve all pending game invites where the given user is the receiver, newest first
// @Tags Invites
// @Produce json
// @Param username path string true "Receiver user id"
// @Success 200 {object} map[string]interface{} "invites"
// @Failure 500 {object} map[string]string "error: Error retrieving invites"
// @Router /invites/{username} [get]
func GetUserInvites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		var invites []models.Invite
		if err := db.Where("receiver_id = ? AND status = ?", username, models.InviteStatusPending).
			Order("created_at DESC").Find(&invites).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving invites"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"invites": invites})
	}
}

type inviteStatusRequest struct {
	SenderID   string `json:"senderId" binding:"required"`
	ReceiverID string `json:"receiverId" binding:"required"`
}

// updateInviteStatus flips every pending invite of the pair to the given
// status. The socket relay never mutates invite status; this REST surface is
// where the store-side transition happens.
func updateInviteStatus(db *gorm.DB, c *gin.Context, status string) {
	var req inviteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "senderId and receiverId are required"})
		return
	}

	result := db.Model(&models.Invite{}).
		Where("sender_id = ? AND receiver_id = ? AND status = ?",
			req.SenderID, req.ReceiverID, models.InviteStatusPending).
		Update("status", status)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating invite"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No pending invite found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

// AcceptInvite godoc
// @Summary Accept a pending invite
// @Description Mark the pending invite between sender and receiver as accepted
// @Tags Invites
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "status"
// @Failure 400 {object} map[string]string "error: senderId and receiverId are required"
// @Failure 404 {object} map[string]string "error: No pending invite found"
// @Router /invites/accept [patch]
func AcceptInvite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		updateInviteStatus(db, c, models.InviteStatusAccepted)
	}
}

// DeclineInvite godoc
// @Summary Decline a pending invite
// @Description Mark the pending invite between sender and receiver as declined
// @Tags Invites
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "status"
// @Failure 400 {object} map[string]string "error: senderId and receiverId are required"
// @Failure 404 {object} map[string]string "error: No pending invite found"
// @Router /invites/decline [patch]
func DeclineInvite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		updateInviteStatus(db, c, models.InviteStatusDeclined)
	}
}
