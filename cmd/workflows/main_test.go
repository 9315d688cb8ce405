package main

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	emulatorapp "github.com/10Narratives/workflows/internal/app/emulator"
	grpctr "github.com/10Narratives/workflows/internal/transport/grpc"
	"github.com/10Narratives/workflows/pkg/lro"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	parent   = "projects/p/regions/us-central1"
	tmplName = parent + "/workflowTemplates/nightly"
)

var operationName = regexp.MustCompile(`operation: name=(\S+),`)

func startEmulator(t *testing.T) string {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	cfg := &emulatorapp.Config{
		Operations: emulatorapp.OperationsConfig{WaitInterval: time.Millisecond},
	}
	app, err := emulatorapp.NewApp(cfg, zap.NewNop(), grpctr.WithListener(lis))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error, 1)
	go func() { stopped <- app.Startup(ctx) }()

	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-stopped)
		require.NoError(t, app.Shutdown(context.Background()))
	})

	return lis.Addr().String()
}

func run(endpoint string, args ...string) (string, error) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--endpoint", endpoint))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeTemplate(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nightly.json")
	data := `{"id":"nightly","jobs":[{"stepId":"extract"},{"stepId":"load","prerequisiteStepIds":["extract"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestWorkflowsCLI(t *testing.T) {
	t.Setenv("LRO_POLL_INITIAL_INTERVAL", "5ms")
	t.Setenv("LRO_POLL_MAX_INTERVAL", "20ms")

	endpoint := startEmulator(t)
	file := writeTemplate(t)

	out, err := run(endpoint, "templates", "create", "--parent", parent, "--file", file)
	require.NoError(t, err)
	require.Contains(t, out, "name="+tmplName+", version=1, jobs=extract,load")

	out, err = run(endpoint, "templates", "list", "--parent", parent, "--all")
	require.NoError(t, err)
	require.Contains(t, out, tmplName)

	out, err = run(endpoint, "templates", "list", "--parent", parent, "--page-size", "1")
	require.NoError(t, err)
	require.Contains(t, out, "next_page_token=\n")

	out, err = run(endpoint, "templates", "instantiate", "--name", tmplName, "--request-id", "run-1", "--param", "DAY=monday", "--wait")
	require.NoError(t, err)
	require.Contains(t, out, "workflow finished")
	require.Contains(t, out, "state=DONE")
	require.Contains(t, out, "nodes=COMPLETED:2")

	match := operationName.FindStringSubmatch(out)
	require.Len(t, match, 2)

	out, err = run(endpoint, "operations", "get", "--name", match[1])
	require.NoError(t, err)
	require.Contains(t, out, "done=true")

	out, err = run(endpoint, "templates", "instantiate", "--name", tmplName)
	require.NoError(t, err)
	require.Contains(t, out, "done=false, state=PENDING")

	match = operationName.FindStringSubmatch(out)
	require.Len(t, match, 2)

	out, err = run(endpoint, "operations", "cancel", "--name", match[1])
	require.NoError(t, err)
	require.Contains(t, out, "cancellation requested=true")
	require.Contains(t, out, "error: code=1")

	_, err = run(endpoint, "operations", "wait", "--name", match[1])
	require.ErrorIs(t, err, lro.ErrCancellationRequested)

	_, err = run(endpoint, "templates", "delete", "--name", tmplName)
	require.NoError(t, err)

	_, err = run(endpoint, "templates", "get", "--name", tmplName)
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestWorkflowsCLI_RequiredFlags(t *testing.T) {
	tests := [][]string{
		{"templates", "get"},
		{"templates", "create", "--parent", parent},
		{"templates", "list"},
		{"templates", "delete"},
		{"templates", "instantiate"},
		{"templates", "instantiate-inline", "--parent", parent},
		{"operations", "get"},
		{"operations", "cancel"},
		{"operations", "wait"},
	}

	for _, args := range tests {
		_, err := run("127.0.0.1:1", args...)
		require.ErrorContains(t, err, "required", args)
	}
}
