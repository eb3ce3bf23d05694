package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/VakaruGIT/NSMS/internal/domain"
)

func TestBuildRequestJSON(t *testing.T) {
	req, err := BuildRequest(context.Background(), "http://localhost:8080/", http.MethodPost, "/newspaper/", map[string]any{"name": "Daily"})
	if err != nil {
		t.Fatalf("BuildRequest error: %v", err)
	}

	if req.Method != http.MethodPost {
		t.Fatalf("expected method POST, got %s", req.Method)
	}
	if req.URL.String() != "http://localhost:8080/newspaper/" {
		t.Fatalf("unexpected url %s", req.URL)
	}
	if ct := req.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type json, got %s", ct)
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("expected valid json body: %v", err)
	}
	if decoded["name"] != "Daily" {
		t.Fatalf("expected json payload, got %v", decoded)
	}
}

func TestBuildRequestNoBody(t *testing.T) {
	req, err := BuildRequest(context.Background(), "http://localhost:8080", http.MethodGet, "/health", nil)
	if err != nil {
		t.Fatalf("BuildRequest error: %v", err)
	}
	if req.Header.Get("Content-Type") != "" {
		t.Fatalf("expected no content-type")
	}
	if req.Header.Get("Accept") != "application/json" {
		t.Fatalf("expected json accept header")
	}
}

func TestBuildRequestInvalidBaseURL(t *testing.T) {
	for _, base := range []string{"", "  ", "localhost:8080", "::"} {
		_, err := BuildRequest(context.Background(), base, http.MethodGet, "/health", nil)
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("base %q: expected invalid_config, got %v", base, err)
		}
	}
}
