package cmd

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
)

func TestUserShowCmd_MultipleUsersInArgOrder(t *testing.T) {
	var calls atomic.Int64
	setupTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		switch r.URL.Path {
		case "/users/show/alice.json":
			_, _ = w.Write([]byte(`{"id": 1, "screen_name": "alice"}`))
		case "/users/show/bob.json":
			_, _ = w.Write([]byte(`{"id": 2, "screen_name": "bob"}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	output := captureStdout(t, func() {
		if err := Execute(context.Background(), []string{"user", "show", "alice", "bob"}); err != nil {
			t.Errorf("Execute failed: %v", err)
		}
	})

	if n := calls.Load(); n != 2 {
		t.Errorf("requests = %d, want 2", n)
	}
	aliceAt := strings.Index(output, "# alice")
	bobAt := strings.Index(output, "# bob")
	if aliceAt == -1 || bobAt == -1 {
		t.Fatalf("missing per-user headers in output: %q", output)
	}
	if aliceAt > bobAt {
		t.Error("responses not printed in argument order")
	}
}

func TestUserShowCmd_SingleUserNoHeader(t *testing.T) {
	setupTestEnv(t, jsonResponse(http.StatusOK, `{"id": 1, "screen_name": "alice"}`))

	output := captureStdout(t, func() {
		if err := Execute(context.Background(), []string{"user", "show", "alice"}); err != nil {
			t.Errorf("Execute failed: %v", err)
		}
	})
	if strings.Contains(output, "# alice") {
		t.Errorf("single lookup should not print a header: %q", output)
	}
}

func TestUserFollowersCmd_RequiresCredentials(t *testing.T) {
	setupEmptyKeyring(t)

	err := Execute(context.Background(), []string{"user", "followers"})
	if err == nil {
		t.Fatal("Expected not-configured error")
	}
	if !strings.Contains(err.Error(), "not configured") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestUserFriendsCmd_PageParam(t *testing.T) {
	var gotPath, gotQuery string
	setupTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))

	captureStdout(t, func() {
		if err := Execute(context.Background(), []string{"user", "friends", "bob", "--page", "3"}); err != nil {
			t.Errorf("Execute failed: %v", err)
		}
	})
	if gotPath != "/statuses/friends/bob.json" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "page=3" {
		t.Errorf("query = %q", gotQuery)
	}
}
