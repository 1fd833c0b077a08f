package chat

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func TestWebSocketVentChannel(t *testing.T) {
	r := setupRouter()
	server := httptest.NewServer(r)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/chat/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(map[string]string{"message": "I feel so lonely"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out struct {
		Response string `json:"response"`
		Mood     string `json:"mood"`
	}
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read: %v", err)
	}

	if out.Response == "" {
		t.Fatal("expected a non-empty response")
	}
}

func TestWebSocketRejectsBlankMessage(t *testing.T) {
	r := setupRouter()
	server := httptest.NewServer(r)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/chat/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(map[string]string{"message": "  "}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out struct {
		Error string `json:"error"`
	}
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Error != "Message is required" {
		t.Fatalf("error = %q, want %q", out.Error, "Message is required")
	}
}
