package postgres

import (
	"time"
)

const (
	GameTypeCheckers      = "checkers"
	GameTypeSnakesLadders = "snakes-ladders"
)

const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusDeclined = "declined"
)

/*
 * 'Invite' represents a game invitation from one user to another. It is the
 * only durable record the relay owns: the socket flow creates it as pending,
 * the REST surface mutates its status afterwards.
 */
type Invite struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	SenderID   string    `gorm:"size:50;not null;index" json:"senderId"`
	ReceiverID string    `gorm:"size:50;not null;index" json:"receiverId"`
	GameType   string    `gorm:"size:20;not null" json:"gameType"`
	Status     string    `gorm:"size:10;not null;default:pending" json:"status"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// ValidGameType reports whether s names one of the two supported games.
func ValidGameType(s string) bool {
	return s == GameTypeCheckers || s == GameTypeSnakesLadders
}
