package cmd

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPICmd_List(t *testing.T) {
	output := captureStdout(t, func() {
		require.NoError(t, Execute(context.Background(), []string{"api", "--list"}))
	})

	names := strings.Fields(output)
	assert.NotEmpty(t, names)
	assert.Contains(t, names, "statuses.update")
	assert.Contains(t, names, "friendships.exists")
	assert.Contains(t, names, "direct_messages")
	assert.IsIncreasing(t, names, "operation list should be sorted")
}

func TestAPICmd_InvokeGet(t *testing.T) {
	var gotPath, gotQuery string
	setupTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`true`))
	}))

	output := captureStdout(t, func() {
		require.NoError(t, Execute(context.Background(), []string{
			"api", "friendships.exists", "-f", "user_a=alice", "-f", "user_b=bob",
		}))
	})

	assert.Equal(t, "/friendships/exists.json", gotPath)
	assert.Equal(t, "user_a=alice&user_b=bob", gotQuery)
	assert.Equal(t, "true\n", output)
}

func TestAPICmd_InvokePostAppendsSource(t *testing.T) {
	var gotBody string
	setupTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte(`{"id": 42}`))
	}))

	captureStdout(t, func() {
		require.NoError(t, Execute(context.Background(), []string{
			"api", "statuses.update", "-f", "status=hello",
		}))
	})

	// The stored profile's source rides along on every POST, last.
	assert.Equal(t, "status=hello&source=birdsong", gotBody)
}

func TestAPICmd_UnknownOperation(t *testing.T) {
	setupTestEnv(t, jsonResponse(http.StatusOK, `{}`))

	err := Execute(context.Background(), []string{"api", "statuses.updte", "-f", "status=hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation")
	assert.Contains(t, err.Error(), "statuses.update", "should suggest the intended operation")
	assert.Equal(t, exitUsage, ExitCode(err))
}

func TestAPICmd_MissingOperationName(t *testing.T) {
	err := Execute(context.Background(), []string{"api"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operation name is required")
}

func TestAPICmd_InvalidField(t *testing.T) {
	setupTestEnv(t, jsonResponse(http.StatusOK, `{}`))

	err := Execute(context.Background(), []string{"api", "users.show", "-f", "noequals"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected key=value")
}

func TestAPICmd_JQFilter(t *testing.T) {
	setupTestEnv(t, jsonResponse(http.StatusOK, `{"id": 42, "text": "hello"}`))

	output := captureStdout(t, func() {
		require.NoError(t, Execute(context.Background(), []string{
			"api", "users.show", "-f", "id=alice", "--jq", ".id",
		}))
	})
	assert.Equal(t, "42\n", output)
}
