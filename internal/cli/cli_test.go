package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/club-studio/internal/preview"
)

func offlineEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FEDERATION_BASE_URL", "fixture")
	t.Setenv("PROFILE_DB_DRIVER", "memory")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("RENDER_ENGINE", "html")
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "studio.log"))
}

func run(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, context.Background(), "version")
	require.NoError(t, err)
	assert.Equal(t, "club-studio test\n", out)
}

func TestRenderWritesArtifactIntoDirectory(t *testing.T) {
	offlineEnv(t)
	dir := t.TempDir()

	out, err := run(t, context.Background(), "render", "--sport", "unihockey", "--game", "4011-05", "--out", dir)
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(dir, "swissunihockey-preview-4011-05.html"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "game-preview")
}

func TestRenderLooksUpResultsForTeam(t *testing.T) {
	offlineEnv(t)
	dir := t.TempDir()

	out, err := run(t, context.Background(), "render",
		"--sport", "handball",
		"--game", "3301-01",
		"--game", "3301-06",
		"--team", "3301",
		"--club", "330",
		"--kind", "result",
		"--out", filepath.Join(dir, "cards")+string(os.PathSeparator),
	)
	require.NoError(t, err)
	assert.FileExists(t, strings.TrimSpace(out))
	assert.Contains(t, out, "swisshandball-result-3301-01_3301-06.html")
}

func TestRenderRejectsResultWithoutResults(t *testing.T) {
	offlineEnv(t)

	_, err := run(t, context.Background(), "render", "--sport", "volleyball", "--game", "71011-07", "--kind", "result")
	require.ErrorIs(t, err, preview.ErrResultUnavailable)
}

func TestRenderValidatesFlags(t *testing.T) {
	offlineEnv(t)

	_, err := run(t, context.Background(), "render", "--sport", "curling", "--game", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--sport")

	_, err = run(t, context.Background(), "render", "--sport", "unihockey", "--game", "1,2,3,4")
	require.ErrorIs(t, err, preview.ErrTooManyGames)

	_, err = run(t, context.Background(), "render", "--sport", "unihockey", "--game", "1", "--theme", "neon")
	require.ErrorIs(t, err, preview.ErrUnknownTheme)
}

func TestFixturesCommandStopsWithContext(t *testing.T) {
	offlineEnv(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	var out string
	go func() {
		var err error
		out, err = run(t, ctx, "fixtures", "--port", "0")
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
		assert.Contains(t, out, "fixture federation on")
	case <-time.After(2 * time.Second):
		t.Fatal("fixtures command did not stop after cancel")
	}
}

func TestServeCommandStopsWithContext(t *testing.T) {
	offlineEnv(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := run(t, ctx, "serve", "--port", "0")
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("serve command did not stop after cancel")
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	offlineEnv(t)
	t.Setenv("LOG_LEVEL", "info")

	a := &app{flags: rootFlags{logLevel: "debug", federationURL: "http://localhost:4100"}}
	a.load()

	assert.Equal(t, "debug", a.cfg.Log.Level)
	assert.Equal(t, "http://localhost:4100", a.cfg.Federation.BaseURL)
	assert.Equal(t, "memory", a.cfg.Store.Driver)
}

func TestOutputPath(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "a.png", outputPath("", "a.png"))
	assert.Equal(t, filepath.Join(dir, "a.png"), outputPath(dir, "a.png"))
	assert.Equal(t, filepath.Join(dir, "x.png"), outputPath(filepath.Join(dir, "x.png"), "a.png"))
}
