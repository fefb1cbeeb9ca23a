package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupInviteTest(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock, func() { db.Close() }
}

func TestGetUserInvites(t *testing.T) {
	gormDB, mock, cleanup := setupInviteTest(t)
	defer cleanup()

	router := gin.New()
	router.GET("/invites/:username", GetUserInvites(gormDB))

	mock.ExpectQuery(`SELECT \* FROM "invites"`).
		WithArgs("bob", "pending").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "sender_id", "receiver_id", "game_type", "status", "created_at"}).
			AddRow(1, "alice", "bob", "checkers", "pending", time.Now()))

	req, _ := http.NewRequest("GET", "/invites/bob", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	invites, ok := response["invites"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, invites, 1)

	first := invites[0].(map[string]interface{})
	assert.Equal(t, "alice", first["senderId"])
	assert.Equal(t, "bob", first["receiverId"])
	assert.Equal(t, "checkers", first["gameType"])
	assert.Equal(t, "pending", first["status"])
}

func TestAcceptInvite(t *testing.T) {
	gormDB, mock, cleanup := setupInviteTest(t)
	defer cleanup()

	router := gin.New()
	router.PATCH("/invites/accept", AcceptInvite(gormDB))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "invites"`).
		WithArgs("accepted", "alice", "bob", "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body, _ := json.Marshal(map[string]string{"senderId": "alice", "receiverId": "bob"})
	req, _ := http.NewRequest("PATCH", "/invites/accept", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "accepted", response["status"])
}

func TestDeclineInviteNotFound(t *testing.T) {
	gormDB, mock, cleanup := setupInviteTest(t)
	defer cleanup()

	router := gin.New()
	router.PATCH("/invites/decline", DeclineInvite(gormDB))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "invites"`).
		WithArgs("declined", "alice", "bob", "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	body, _ := json.Marshal(map[string]string{"senderId": "alice", "receiverId": "bob"})
	req, _ := http.NewRequest("PATCH", "/invites/decline", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAcceptInviteMissingFields(t *testing.T) {
	gormDB, _, cleanup := setupInviteTest(t)
	defer cleanup()

	router := gin.New()
	router.PATCH("/invites/accept", AcceptInvite(gormDB))

	body, _ := json.Marshal(map[string]string{"senderId": "alice"})
	req, _ := http.NewRequest("PATCH", "/invites/accept", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
