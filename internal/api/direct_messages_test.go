package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDirectMessagesList(t *testing.T) {
	tests := []struct {
		name      string
		opts      MessageOptions
		wantQuery string
	}{
		{
			name: "no filters",
		},
		{
			name:      "all filters in order",
			opts:      MessageOptions{Since: "cutoff", SinceID: "55", Page: 3},
			wantQuery: "since=cutoff&since_id=55&page=3",
		},
		{
			name:      "page only",
			opts:      MessageOptions{Page: 2},
			wantQuery: "page=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/direct_messages.json" {
					t.Errorf("path = %q, want %q", r.URL.Path, "/direct_messages.json")
				}
				if r.URL.RawQuery != tt.wantQuery {
					t.Errorf("query = %q, want %q", r.URL.RawQuery, tt.wantQuery)
				}
				_, _ = w.Write([]byte(`[]`))
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			creds := Credentials{Username: "alice", Password: "s3cret"}
			if _, err := client.DirectMessages().List(context.Background(), FormatJSON, creds, tt.opts); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
		})
	}
}

func TestDirectMessagesSent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/direct_messages/sent.xml" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/direct_messages/sent.xml")
		}
		_, _ = w.Write([]byte(`<direct-messages/>`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	creds := Credentials{Username: "alice", Password: "s3cret"}
	resp, err := client.DirectMessages().Sent(context.Background(), FormatXML, creds, MessageOptions{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(resp.Body) != `<direct-messages/>` {
		t.Errorf("Body = %q", resp.Body)
	}
}

func TestDirectMessageSend(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/direct_messages/new.json" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/direct_messages/new.json")
		}
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte(`{"id": 9}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	creds := Credentials{Username: "alice", Password: "s3cret"}
	if _, err := client.DirectMessages().Send(context.Background(), FormatJSON, creds, "bob", "see you at 9"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if gotBody != "user=bob&text=see+you+at+9" {
		t.Errorf("form body = %q", gotBody)
	}
}

func TestDirectMessageSendMissingText(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	creds := Credentials{Username: "alice", Password: "s3cret"}
	_, err := client.DirectMessages().Send(context.Background(), FormatJSON, creds, "bob", "")
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	if calls != 0 {
		t.Errorf("network calls = %d, want 0", calls)
	}
}

func TestDirectMessageDestroy(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id": 9}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	creds := Credentials{Username: "alice", Password: "s3cret"}
	if _, err := client.DirectMessages().Destroy(context.Background(), FormatJSON, creds, "9"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if gotPath != "/direct_messages/destroy/9.json" {
		t.Errorf("path = %q", gotPath)
	}
}
