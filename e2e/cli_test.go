package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"batepapo/internal/api"
	"batepapo/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "chatctl-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/chatctl")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runAs(user string, args ...string) (string, error) {
	return r.run(append([]string{"--user", user}, args...)...)
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		PresenceService: app.PresenceService,
		ChatService:     app.ChatService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type participantResponse struct {
	Name       string    `json:"name"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

type chatMessageResponse struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
	Type string `json:"type"`
	Time string `json:"time"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_JoinAndList(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("join", "--name", "ana")
	require.NoError(t, err, "output: %s", output)

	var joined participantResponse
	require.NoError(t, json.Unmarshal([]byte(output), &joined))
	assert.Equal(t, "ana", joined.Name)

	// Duplicate join is a conflict
	output, err = cli.run("join", "--name", "ana")
	require.Error(t, err, "output: %s", output)

	output, err = cli.run("participants")
	require.NoError(t, err, "output: %s", output)

	var participants []participantResponse
	require.NoError(t, json.Unmarshal([]byte(output), &participants))
	require.Len(t, participants, 1)
	assert.Equal(t, "ana", participants[0].Name)
}

func TestCLI_MessageFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	_, err := cli.run("join", "--name", "ana")
	require.NoError(t, err)
	_, err = cli.run("join", "--name", "bob")
	require.NoError(t, err)

	// Ana broadcasts, then whispers to Bob
	output, err := cli.runAs("ana", "send", "--text", "hello room")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.runAs("ana", "send", "--to", "bob", "--text", "just us", "--private")
	require.NoError(t, err, "output: %s", output)

	var secret chatMessageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &secret))
	assert.Equal(t, "private_message", secret.Type)

	// Bob sees the private message, a stranger does not
	output, err = cli.runAs("bob", "messages")
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, secret.ID)

	_, err = cli.run("join", "--name", "carol")
	require.NoError(t, err)
	output, err = cli.runAs("carol", "messages")
	require.NoError(t, err, "output: %s", output)
	assert.NotContains(t, output, secret.ID)

	// Ana fixes a typo then thinks better of it
	output, err = cli.runAs("ana", "edit", secret.ID, "--to", "bob", "--text", "between us", "--private")
	require.NoError(t, err, "output: %s", output)

	var edited chatMessageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &edited))
	assert.Equal(t, secret.ID, edited.ID)
	assert.Equal(t, "between us", edited.Text)

	// Bob cannot delete Ana's message
	_, err = cli.runAs("bob", "delete", secret.ID)
	require.Error(t, err)

	_, err = cli.runAs("ana", "delete", secret.ID)
	require.NoError(t, err)

	output, err = cli.runAs("bob", "messages")
	require.NoError(t, err, "output: %s", output)
	assert.NotContains(t, output, secret.ID)
}

func TestCLI_Heartbeat(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	_, err := cli.run("join", "--name", "ana")
	require.NoError(t, err)

	_, err = cli.runAs("ana", "heartbeat")
	require.NoError(t, err)

	// Heartbeating an unknown name fails
	_, err = cli.runAs("ghost", "heartbeat")
	require.Error(t, err)
}

func TestCLI_LimitedMessages(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	_, err := cli.run("join", "--name", "ana")
	require.NoError(t, err)

	for _, text := range []string{"one", "two", "three"} {
		_, err = cli.runAs("ana", "send", "--text", text)
		require.NoError(t, err)
	}

	output, err := cli.runAs("ana", "messages", "--limit", "2")
	require.NoError(t, err, "output: %s", output)

	var messages []chatMessageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &messages))
	require.Len(t, messages, 2)

	// Newest first when limited
	assert.Equal(t, "three", messages[0].Text)
	assert.Equal(t, "two", messages[1].Text)
}
