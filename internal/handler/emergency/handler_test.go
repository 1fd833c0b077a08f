package emergency

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New().RegisterRoutes(r)
	return r
}

func TestActivateEmergencySupport(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/emergency", strings.NewReader(`{"type":"crisis"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out struct {
		Success   bool `json:"success"`
		Emergency struct {
			ID        string     `json:"id"`
			Status    string     `json:"status"`
			Resources []Resource `json:"resources"`
		} `json:"emergency"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !out.Success {
		t.Fatal("expected success")
	}
	if out.Emergency.Status != "activated" {
		t.Fatalf("status = %q, want activated", out.Emergency.Status)
	}
	if out.Emergency.ID == "" {
		t.Fatal("expected an event id")
	}

	found := false
	for _, res := range out.Emergency.Resources {
		if strings.Contains(res.Contact, "988") {
			found = true
		}
	}
	if !found {
		t.Fatalf("resources missing 988 lifeline: %+v", out.Emergency.Resources)
	}
}

func TestActivateEmergencyToleratesEmptyBody(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/emergency", strings.NewReader(""))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 even with empty body, got %d", resp.Code)
	}
}
