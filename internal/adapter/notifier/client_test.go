package notifier

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPSenderRejectsRelativeURL(t *testing.T) {
	if _, err := NewHTTPSender("/notifications", discardLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestHTTPSenderPostsEvent(t *testing.T) {
	var received model.Event
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/notifications" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode event: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	sender, err := NewHTTPSender(server.URL, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	event := model.NewEvent(model.EventNewOrder, "order", 7, "order 7 created")
	if err := sender.Send(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if received.Kind != model.EventNewOrder || received.EntityID != 7 {
		t.Fatalf("unexpected event delivered: %+v", received)
	}
}

func TestHTTPSenderReportsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	sender, err := NewHTTPSender(server.URL, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sender.Send(context.Background(), model.NewEvent(model.EventQuoteExpired, "quote", 1, "")); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestLogSenderNeverFails(t *testing.T) {
	sender := NewLogSender(discardLogger())
	if err := sender.Send(context.Background(), model.NewEvent(model.EventQuoteAccepted, "quote", 1, "accepted")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
