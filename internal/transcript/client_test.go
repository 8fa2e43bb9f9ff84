package transcript

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/timedtext" {
			t.Errorf("expected /timedtext, got %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("v"); got != "dQw4w9WgXcQ" {
			t.Errorf("v = %q", got)
		}
		if got := r.URL.Query().Get("lang"); got != "en" {
			t.Errorf("lang = %q, want en", got)
		}

		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="utf-8"?>
<transcript>
	<text start="0.0" dur="2.5">Hello everyone</text>
	<text start="2.5" dur="3.0">welcome back</text>
</transcript>`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	text, err := client.Fetch(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Hello everyone welcome back" {
		t.Errorf("text = %q", text)
	}
}

func TestFetch_UnescapesEntities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The service escapes caption text on top of the XML escaping.
		_, _ = w.Write([]byte(`<transcript><text start="0" dur="1">it&amp;#39;s fine</text></transcript>`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	text, err := client.Fetch(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "it's fine" {
		t.Errorf("text = %q, want %q", text, "it's fine")
	}
}

func TestFetch_NoCaptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Videos without captions return an empty 200 body.
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.Fetch(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, ErrNoCaptions) {
		t.Fatalf("expected ErrNoCaptions, got %v", err)
	}
}

func TestFetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	if _, err := client.Fetch(context.Background(), "dQw4w9WgXcQ"); err == nil {
		t.Fatal("expected error")
	}
}
