package chat

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	chatModel "github.com/ScienHAC/ventspace/internal/model/chat"
)

// historyWindow bounds the per-connection conversation context carried into
// each reply.
const historyWindow = 12

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type wsInbound struct {
	Message string `json:"message"`
}

type wsError struct {
	Error string `json:"error"`
}

// handleWebSocket runs a live vent channel. Each inbound frame goes through
// the same analyze-then-respond pipeline as POST /chat; the connection keeps
// a bounded rolling history window so replies stay in context. State is
// connection-local and discarded on close.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[ws] vent channel opened from %s", r.RemoteAddr)

	var history []chatModel.Turn
	for {
		var inbound wsInbound
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read failed: %v", err)
			}
			return
		}

		if strings.TrimSpace(inbound.Message) == "" {
			if err := conn.WriteJSON(wsError{Error: "Message is required"}); err != nil {
				log.Printf("[ws] write failed: %v", err)
				return
			}
			continue
		}

		result := h.ventSvc.Process(r.Context(), inbound.Message, history)

		history = append(history,
			chatModel.Turn{Sender: chatModel.SenderUser, Text: inbound.Message, Timestamp: result.Timestamp},
			chatModel.Turn{Sender: chatModel.SenderAssistant, Text: result.Response, Timestamp: result.Timestamp},
		)
		history = chatModel.Tail(history, historyWindow)

		payload, err := json.Marshal(result)
		if err != nil {
			log.Printf("[ws] marshal failed: %v", err)
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("[ws] write failed: %v", err)
			return
		}
	}
}
