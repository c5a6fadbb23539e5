package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPublicTimeline(t *testing.T) {
	tests := []struct {
		name         string
		format       Format
		sinceID      string
		statusCode   int
		responseBody string
		wantPath     string
		wantQuery    string
		expectError  bool
	}{
		{
			name:         "json without filters",
			format:       FormatJSON,
			statusCode:   http.StatusOK,
			responseBody: `[{"id": 1, "text": "first"}]`,
			wantPath:     "/statuses/public_timeline.json",
		},
		{
			name:         "rss with since_id",
			format:       FormatRSS,
			sinceID:      "12345",
			statusCode:   http.StatusOK,
			responseBody: `<rss version="2.0"></rss>`,
			wantPath:     "/statuses/public_timeline.rss",
			wantQuery:    "since_id=12345",
		},
		{
			name:        "server error",
			format:      FormatJSON,
			statusCode:  http.StatusInternalServerError,
			wantPath:    "/statuses/public_timeline.json",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != tt.wantPath {
					t.Errorf("path = %q, want %q", r.URL.Path, tt.wantPath)
				}
				if r.URL.RawQuery != tt.wantQuery {
					t.Errorf("query = %q, want %q", r.URL.RawQuery, tt.wantQuery)
				}
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			resp, err := client.Statuses().PublicTimeline(context.Background(), tt.format, tt.sinceID)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if string(resp.Body) != tt.responseBody {
				t.Errorf("Body = %q, want %q", resp.Body, tt.responseBody)
			}
		})
	}
}

func TestFriendsTimelineOptions(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	creds := Credentials{Username: "alice", Password: "s3cret"}
	opts := TimelineOptions{ID: "bob", SinceID: "99", Count: 10, Page: 2}
	if _, err := client.Statuses().FriendsTimeline(context.Background(), FormatJSON, creds, opts); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if gotPath != "/statuses/friends_timeline/bob.json" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "since_id=99&count=10&page=2" {
		t.Errorf("query = %q, want %q", gotQuery, "since_id=99&count=10&page=2")
	}
}

func TestStatusUpdate(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/statuses/update.json" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/statuses/update.json")
		}
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte(`{"id": 42, "text": "hello"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	creds := Credentials{Username: "alice", Password: "s3cret"}
	resp, err := client.Statuses().Update(context.Background(), FormatJSON, creds, "hello", "1431")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if gotBody != "status=hello&in_reply_to_status_id=1431" {
		t.Errorf("form body = %q", gotBody)
	}
	status, err := DecodeStatus(resp.Body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.ID != 42 || status.Text != "hello" {
		t.Errorf("status = %+v", status)
	}
}

func TestStatusUpdateRejectsSyndicationFormats(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	creds := Credentials{Username: "alice", Password: "s3cret"}
	for _, format := range []Format{FormatRSS, FormatAtom} {
		_, err := client.Statuses().Update(context.Background(), format, creds, "hello", "")
		if _, ok := err.(*ValidationError); !ok {
			t.Errorf("format %s: expected *ValidationError, got %T (%v)", format, err, err)
		}
	}
	if calls != 0 {
		t.Errorf("network calls = %d, want 0", calls)
	}
}

func TestStatusDestroy(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id": 42}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	creds := Credentials{Username: "alice", Password: "s3cret"}
	if _, err := client.Statuses().Destroy(context.Background(), FormatXML, creds, "42"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if gotPath != "/statuses/destroy/42.xml" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestStatusShowNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.Statuses().Show(context.Background(), FormatJSON, "404404")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !resp.NoContent {
		t.Error("NoContent = false, want true")
	}
}
