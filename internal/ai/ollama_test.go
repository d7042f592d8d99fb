package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestOllamaClientGenerate tests the happy path and request shape
func TestOllamaClientGenerate(t *testing.T) {
	var gotPath string
	var gotReq ollamaChatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(ollamaChatResponse{
			Message: Message{Role: RoleAssistant, Content: goodReply},
			Done:    true,
		})
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, "deepseek-r1:1.5b", 10*time.Second)
	content, err := client.Generate(context.Background(), []Message{{Role: RoleUser, Content: "look"}})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if content != goodReply {
		t.Errorf("Unexpected content %q", content)
	}
	if gotPath != "/api/chat" {
		t.Errorf("Unexpected path %q", gotPath)
	}
	if gotReq.Stream {
		t.Error("Streaming must be disabled")
	}
	if gotReq.Format != "json" {
		t.Errorf("Expected JSON format forcing, got %q", gotReq.Format)
	}
	if gotReq.Model != "deepseek-r1:1.5b" {
		t.Errorf("Unexpected model %q", gotReq.Model)
	}
}

// TestOllamaClientErrorField tests the in-body error path
func TestOllamaClientErrorField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaChatResponse{Error: "model not found"})
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, "missing-model", time.Second)
	_, err := client.Generate(context.Background(), nil)
	if err == nil {
		t.Fatal("Expected an error")
	}
	if Classify(err) != ClassUnclassified {
		t.Errorf("Expected unclassified, got %s", Classify(err))
	}
}

// TestOllamaClientTimeout tests slow responses surfacing as transport_timeout
func TestOllamaClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, "m", 50*time.Millisecond)
	_, err := client.Generate(context.Background(), nil)
	if Classify(err) != ClassTimeout {
		t.Errorf("Expected transport_timeout, got %v", err)
	}
}

// TestOllamaClientUnreachable tests connection failures
func TestOllamaClientUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewOllamaClient(server.URL, "m", time.Second)
	_, err := client.Generate(context.Background(), nil)
	if Classify(err) != ClassUnreachable {
		t.Errorf("Expected transport_unreachable, got %v", err)
	}
}

// TestOllamaPing tests the liveness probe
func TestOllamaPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Ollama is running"))
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, "m", time.Second)
	if err := client.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

// TestOllamaPingDown tests probe failures for both error shapes
func TestOllamaPingDown(t *testing.T) {
	errServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer errServer.Close()

	client := NewOllamaClient(errServer.URL, "m", time.Second)
	if err := client.Ping(context.Background()); err == nil {
		t.Error("Expected error status to fail the probe")
	}

	deadServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadServer.Close()

	client = NewOllamaClient(deadServer.URL, "m", time.Second)
	if err := client.Ping(context.Background()); err == nil {
		t.Error("Expected connection failure to fail the probe")
	}
}
