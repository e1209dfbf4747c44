// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/quiz-night/game"
)

// Hub fans question events out to connected clients. A party is small, so a
// single broadcast group is enough; clients filter by question_id themselves.
type Hub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]bool),
	}
}

// AddConnection registers a client connection.
func (h *Hub) AddConnection(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.conns[conn] = true
	slog.Info("ws client connected", "total", len(h.conns))
}

// RemoveConnection unregisters and closes a client connection.
func (h *Hub) RemoveConnection(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[conn]; ok {
		delete(h.conns, conn)
		conn.Close()
		slog.Info("ws client disconnected", "total", len(h.conns))
	}
}

// PublishQuestionEvent implements game.Publisher. A write failure drops the
// client; delivery is best effort and clients fall back to polling.
func (h *Hub) PublishQuestionEvent(evt game.QuestionEvent) {
	data, err := json.Marshal(evt)
	if err != nil {
		slog.Error("ws marshal failed", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			slog.Warn("ws write failed, dropping client", "error", err)
			conn.Close()
			delete(h.conns, conn)
		}
	}
}
