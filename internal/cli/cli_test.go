package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/Gautam-Hegde/notte-go/internal/common/httpclient"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type fakeNotte struct {
	router chi.Router
	calls  []string
	bodies []string
}

func newFakeNotte() *fakeNotte {
	f := &fakeNotte{router: chi.NewRouter()}
	f.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
			f.calls = append(f.calls, r.Method+" "+r.URL.Path)
			f.bodies = append(f.bodies, string(body))
			next.ServeHTTP(w, r)
		})
	})
	f.router.Post("/sessions/start", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"s1","status":"running","created_at":"t0","updated_at":"t0","expires_at":null}`))
	})
	f.router.Delete("/sessions/{id}/close", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"` + chi.URLParam(r, "id") + `","status":"closed","created_at":"t0","updated_at":"t1","expires_at":null}`))
	})
	f.router.Post("/agents/run", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"a1","session_id":"s1","status":"running","created_at":"t0","updated_at":"t0"}`))
	})
	f.router.Get("/agents/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"agent missing not found"}`))
			return
		}
		w.Write([]byte(`{"id":"a1","session_id":"s1","status":"completed","created_at":"t0","updated_at":"t2","output":{"answer":"42"}}`))
	})
	f.router.Get("/env/status", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok","version":"1.2.0"}`))
	})
	return f
}

// runCLI executes the CLI against f with a config file at cfgPath and
// returns what was written to stdout.
func runCLI(t *testing.T, f *fakeNotte, cfgPath string, args ...string) (string, error) {
	t.Helper()
	config = nil
	newTransport = func(apiKey string) httpclient.HTTPClientInterface {
		return httpclient.NewTestClient(apiKey, f.router)
	}
	t.Cleanup(func() { newTransport = nil })

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", cfgPath, "--api-key", "test-key", "--server", "http://notte.test"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSessionStartThenCloseAcrossInvocations(t *testing.T) {
	f := newFakeNotte()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := runCLI(t, f, cfgPath, "sessions", "start", "--timeout", "5", "--screenshot")
	require.NoError(t, err)
	assert.Contains(t, out, "Session: s1")
	assert.JSONEq(t, `{"timeout_minutes":5,"screenshot":true,"max_steps":20}`, f.bodies[0])

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "last_session_id: s1")

	out, err = runCLI(t, f, cfgPath, "sessions", "close")
	require.NoError(t, err)
	assert.Equal(t, "DELETE /sessions/s1/close", f.calls[1])
	assert.Contains(t, out, "Status: Closed")
}

func TestAgentRunUsesLastSessionAndEdits(t *testing.T) {
	f := newFakeNotte()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, (&Config{Version: ConfigFormatVersion, LastSessionID: "s1"}).WriteConfig(cfgPath))

	out, err := runCLI(t, f, cfgPath, "agents", "run", "-j",
		"--agent-config", `{"task":"old"}`,
		"--set", "task=find the price",
		"--set", "parameters.max_tabs=2")
	require.NoError(t, err)
	require.Equal(t, []string{"POST /agents/run"}, f.calls)

	body := gjson.Parse(f.bodies[0])
	assert.Equal(t, "s1", body.Get("session_id").String())
	assert.Equal(t, "find the price", body.Get("agent_config.task").String())
	assert.Equal(t, int64(2), body.Get("agent_config.parameters.max_tabs").Int())
	assert.Equal(t, int64(100), body.Get("max_actions").Int())

	assert.Equal(t, "a1", gjson.Get(out, "value.id").String())
	assert.Equal(t, int64(1), gjson.Get(out, "result").Int())

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "last_agent_id: a1")
}

func TestAgentStatusYAML(t *testing.T) {
	f := newFakeNotte()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := runCLI(t, f, cfgPath, "agents", "status", "a1", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "id: a1")
	assert.Contains(t, out, "answer: \"42\"")
}

func TestEnvStatusJSON(t *testing.T) {
	f := newFakeNotte()
	out, err := runCLI(t, f, filepath.Join(t.TempDir(), "config.yaml"), "env", "status", "-j")
	require.NoError(t, err)
	assert.Equal(t, "ok", gjson.Get(out, "value.status").String())
}

func TestMissingSessionIDIsReported(t *testing.T) {
	f := newFakeNotte()
	_, err := runCLI(t, f, filepath.Join(t.TempDir(), "config.yaml"), "sessions", "close", "--error-mode", "agent")
	require.Error(t, err)
	assert.Empty(t, f.calls)

	root := newRootCmd()
	var stderr bytes.Buffer
	root.SetErr(&stderr)
	errorMode = "agent"
	printError(root, err)
	assert.Equal(t, "Error: InvalidRequestError: Session ID is required\n", stderr.String())
}

func TestAPIErrorDeveloperMode(t *testing.T) {
	f := newFakeNotte()
	_, err := runCLI(t, f, filepath.Join(t.TempDir(), "config.yaml"), "agents", "status", "missing")
	require.Error(t, err)

	root := newRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	jsonOutput = true
	t.Cleanup(func() { jsonOutput = false })
	printError(root, err)
	msg := gjson.Get(stdout.String(), "error").String()
	assert.Contains(t, msg, "NotteAPIError (status 404): agent missing not found")
	assert.Contains(t, msg, `raw response: {"message":"agent missing not found"}`)
}

func TestInvalidErrorMode(t *testing.T) {
	f := newFakeNotte()
	_, err := runCLI(t, f, filepath.Join(t.TempDir(), "config.yaml"), "env", "status", "--error-mode", "loud")
	require.Error(t, err)
	assert.Empty(t, f.calls)
}

func TestVersion(t *testing.T) {
	f := newFakeNotte()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	out, err := runCLI(t, f, cfgPath, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "notte CLI "+getCLIVersion())
	assert.Contains(t, out, cfgPath)
}

func TestBuildAgentConfig(t *testing.T) {
	cfg, err := buildAgentConfig("", []string{"task=hello", "flags.fast=true", `tags=["a","b"]`})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"task":  "hello",
		"flags": map[string]any{"fast": true},
		"tags":  []any{"a", "b"},
	}, cfg)

	path := filepath.Join(t.TempDir(), "agent.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"task":"from file"}`), 0o600))
	cfg, err = buildAgentConfig("@"+path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from file", cfg["task"])

	_, err = buildAgentConfig("{not json", nil)
	assert.Error(t, err)
	_, err = buildAgentConfig("[1,2]", nil)
	assert.Error(t, err)
	_, err = buildAgentConfig("{}", []string{"novalue"})
	assert.Error(t, err)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Running", statusLabel("running"))
	assert.Equal(t, "Timed Out", statusLabel("timed_out"))
	assert.Equal(t, "Pending", statusLabel("pending"))
}
