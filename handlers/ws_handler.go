package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fumiya-dev/entrymarket-go/middleware"
	"github.com/fumiya-dev/entrymarket-go/repositories"
	"github.com/fumiya-dev/entrymarket-go/response"
	"github.com/fumiya-dev/entrymarket-go/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const entryFeedInterval = 3 * time.Second

type WSHandler struct {
	svc *services.EntryService
}

func NewWSHandler(svc *services.EntryService) *WSHandler {
	return &WSHandler{svc: svc}
}

// WatchEntries streams the caller's entry list over a websocket. A fresh
// snapshot is pushed on connect and again whenever the list changes, so a
// dashboard sees approvals and rejections without polling the REST API.
// Browsers cannot set headers on websocket requests, so the JWT arrives as
// a query parameter.
func (h *WSHandler) WatchEntries(c *gin.Context) {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		if cookie, err := c.Cookie("token"); err == nil {
			tokenStr = cookie
		}
	}
	claims, err := middleware.ParseToken(tokenStr)
	if err != nil || claims == nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	filter := repositories.EntryFilter{}
	if !claims.IsAdmin {
		uid := claims.UserID
		filter.UID = &uid
	}

	writeChan := make(chan []byte, 100)

	go func() {
		defer conn.Close()
		for msg := range writeChan {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				break
			}
		}
	}()

	done := make(chan struct{})
	go h.pollEntries(filter, writeChan, done)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			close(done)
			break
		}
	}
}

func (h *WSHandler) pollEntries(filter repositories.EntryFilter, writeChan chan<- []byte, done <-chan struct{}) {
	defer close(writeChan)

	ticker := time.NewTicker(entryFeedInterval)
	defer ticker.Stop()

	var last []byte
	for {
		entries, err := h.svc.List(filter)
		if err == nil {
			snapshot, err := json.Marshal(entries)
			if err == nil && !bytes.Equal(snapshot, last) {
				last = snapshot
				select {
				case writeChan <- snapshot:
				case <-done:
					return
				}
			}
		}

		select {
		case <-ticker.C:
		case <-done:
			return
		}
	}
}
